// Command dump prints every report stored in a deployed report contract as a
// stream of JSON documents. It is meant for quick inspection of a live
// deployment without a wallet.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kleros/Alice-Integration/rpc/report"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type reportRecord struct {
	ID             string `json:"id"`
	Agreement      string `json:"agreement"`
	Key            string `json:"key"`
	Submitter      string `json:"submitter"`
	Status         int64  `json:"status"`
	DisputeID      int64  `json:"dispute_id"`
	LastActionTime int64  `json:"last_action_time"`
	Supporter      string `json:"supporter,omitempty"`
	Challenger     string `json:"challenger,omitempty"`
	RoundCount     int64  `json:"round_count"`
	Ruling         int64  `json:"ruling"`
	Success        bool   `json:"success"`
	Registered     bool   `json:"registered"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "LE script hash of the deployed report contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddr == "":
		log.Fatal("missing report contract address")
	}

	contract, err := util.Uint160DecodeStringLE(*contractAddr)
	if err != nil {
		log.Fatal(fmt.Errorf("decode report contract address: %w", err))
	}

	n, err := _dump(*neoRPCEndpoint, contract)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%d reports are successfully dumped\n", n)
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160) (int, error) {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return 0, fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	log.Printf("Dumping reports of contract %s at block #%d...\n",
		contract.StringLE(), b.currentBlock)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	var n int
	err = b.iterateReports(contract, func(id []byte, rep *report.ReportReport) error {
		n++
		return enc.Encode(newReportRecord(id, rep))
	})

	return n, err
}

func newReportRecord(id []byte, rep *report.ReportReport) reportRecord {
	rec := reportRecord{
		ID:             hex.EncodeToString(id),
		Agreement:      rep.Agreement.StringLE(),
		Key:            hex.EncodeToString(rep.Key),
		Submitter:      rep.Submitter.StringLE(),
		Status:         rep.Status.Int64(),
		DisputeID:      rep.DisputeID.Int64(),
		LastActionTime: rep.LastActionTime.Int64(),
		RoundCount:     rep.RoundCount.Int64(),
		Ruling:         rep.Ruling.Int64(),
		Success:        rep.Success,
		Registered:     rep.Registered,
	}

	if !rep.Supporter.Equals(util.Uint160{}) {
		rec.Supporter = rep.Supporter.StringLE()
	}
	if !rep.Challenger.Equals(util.Uint160{}) {
		rec.Challenger = rep.Challenger.StringLE()
	}

	return rec
}
