/*
Package report implements the Report contract, an arbitrable validator of
impact-promise claims.

An authorized submitter reports that a claim registered with an external
agreement contract resolved with some outcome. Anyone disagreeing may
challenge the report within the execution timeout by putting down a deposit;
anyone may then confirm the report with a matching deposit, which opens a
dispute with the external arbitrator contract. While the dispute runs, both
sides crowdfund appeal rounds: every round requires each side to cover the
quoted appeal cost plus a stake scaled by the winner, loser or shared
multiplier, and completes by raising an appeal once both sides are covered.
The arbitrator's final ruling (possibly overridden in favor of the only side
that funded the last round) fixes the report outcome, after which round
contributors withdraw deposits and proportional rewards from the accumulated
fee pools. A report that stayed unchallenged, or a challenge that stayed
unconfirmed, is finalized by timeout instead.

All deposits are native GAS pulled from the witnessed payer; refunds and
payouts are pushed best-effort so that no recipient can block a state
transition by rejecting funds.

# Contract notifications

ReportCreated notification. Produced when an authorized submitter creates a
report:

	ReportCreated
	  - name: id
	    type: ByteArray
	  - name: agreement
	    type: Hash160
	  - name: key
	    type: ByteArray
	  - name: submitter
	    type: Hash160
	  - name: success
	    type: Boolean

Evidence notification. Produced when a party attaches an evidence reference
to a report:

	Evidence
	  - name: id
	    type: ByteArray
	  - name: party
	    type: Hash160
	  - name: evidence
	    type: String

Dispute notification. Produced when a confirmed challenge opens an arbitrator
dispute:

	Dispute
	  - name: arbitrator
	    type: Hash160
	  - name: disputeID
	    type: Integer
	  - name: id
	    type: ByteArray

Contribution notification. Produced when a deposit or appeal stake is
credited to one side of a funding round:

	Contribution
	  - name: id
	    type: ByteArray
	  - name: side
	    type: Integer
	  - name: contributor
	    type: Hash160
	  - name: amount
	    type: Integer

HasPaidAppealFee notification. Produced when a side fully covers its appeal
total for the current round:

	HasPaidAppealFee
	  - name: id
	    type: ByteArray
	  - name: side
	    type: Integer

Ruling notification. Produced when the arbitrator rules a dispute:

	Ruling
	  - name: arbitrator
	    type: Hash160
	  - name: disputeID
	    type: Integer
	  - name: ruling
	    type: Integer

ReportResolved notification. Produced when a report reaches its final
outcome, by ruling or by timeout:

	ReportResolved
	  - name: id
	    type: ByteArray
	  - name: success
	    type: Boolean

RewardWithdrawn notification. Produced when a contributor withdraws fees and
rewards from a resolved round:

	RewardWithdrawn
	  - name: id
	    type: ByteArray
	  - name: beneficiary
	    type: Hash160
	  - name: roundIndex
	    type: Integer
	  - name: amount
	    type: Integer

PromiseValidated notification. Produced when a successful report is forwarded
to its agreement contract:

	PromiseValidated
	  - name: id
	    type: ByteArray
	  - name: key
	    type: ByteArray
*/
package report

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'r' + [32]byte report ID -> std.Serialize(Report)
   Reports of impact-promise claims. The ID is Sha256 over the agreement
   contract address, the claim key and the submitter account, so one report
   exists per (agreement, key, submitter) triple. Records are never deleted,
   the ledger is a permanent audit trail.
 - 'n' + [32]byte report ID + round index -> std.Serialize(Round)
   Funding rounds of the report's dispute. Round 0 is created by the
   challenge, a new round is appended whenever both sides fully fund an
   appeal.
 - 'c' + [32]byte report ID + [20]byte contributor + side byte + round index -> int
   Outstanding contribution of an account to one side of a round. Deleted
   when the contributor withdraws, which is what makes withdrawal idempotent.
 - 'd' + dispute ID -> [32]byte report ID
   Back-reference from arbitrator dispute to the report it arbitrates, fixed
   at dispute creation.
 - 'g' -> interop.Hash160
   Governor account allowed to tune parameters and update the contract.
 - 'a' -> interop.Hash160
   Arbitrator contract address, fixed at deploy.
 - 'x' -> []byte
   Extra data forwarded with every arbitrator call.
 - 't' -> int
   Execution timeout (ms) gating challenge, confirmation and approval.
 - 'b' -> int
   Flat base deposit added to challenge and confirmation totals.
 - 's', 'w', 'l' -> int
   Shared, winner and loser stake multipliers in basis points.

# Fee accounting
Per-round paid fees and the reward pool are folded into the Round record;
per-contributor stakes live under separate composite keys so that a
withdrawal only ever touches the beneficiary's own entries.
*/
