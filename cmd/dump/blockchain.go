package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kleros/Alice-Integration/rpc/report"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// wrapper over the Neo RPC client providing the blockchain services needed
// for the current command.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker

	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	if err := c.Init(); err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		invoker:      invoker.New(c, nil),
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateReports traverses the report iterator of the contract referenced by
// the given address and passes each (id, report) pair into f. iterateReports
// breaks on any f's error and returns it.
func (x *remoteBlockchain) iterateReports(contract util.Uint160, f func(id []byte, rep *report.ReportReport) error) error {
	reader := report.NewReader(x.invoker, contract)

	sessionID, iter, err := reader.IterateReports()
	if err != nil {
		return fmt.Errorf("open report iterator: %w", err)
	}

	defer func() {
		_ = x.invoker.TerminateSession(sessionID)
	}()

	const batchSize = 100

	for {
		items, err := x.invoker.TraverseIterator(sessionID, &iter, batchSize)
		if err != nil {
			return fmt.Errorf("traverse report iterator: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		for i := range items {
			pair, ok := items[i].Value().([]stackitem.Item)
			if !ok || len(pair) != 2 {
				return fmt.Errorf("unexpected iterator item #%d", i)
			}

			id, err := pair[0].TryBytes()
			if err != nil {
				return fmt.Errorf("report ID of iterator item #%d: %w", i, err)
			}

			var rep report.ReportReport
			if err := rep.FromStackItem(pair[1]); err != nil {
				return fmt.Errorf("report %x: %w", id, err)
			}

			if err := f(id, &rep); err != nil {
				return err
			}
		}
	}
}
