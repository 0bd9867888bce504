/*
Package ethbridge implements the ledger-resident core of the Vottun bridge
between Qubic and Ethereum.

The package tracks transfer orders moving value between the two chains,
enforces a fee-and-lock accounting model and governs privileged state changes
through an on-chain multisignature proposal mechanism. Three subsystems share
one global contract state:

  - the order state machine (create, receive tokens, complete, refund) with
    its locked-token accounting,
  - the multisig governance engine collecting approvals and executing
    administrative actions once a threshold is reached,
  - the fee ledger accruing two independent fee pools on order creation and
    distributing them on the host's end-of-tick callback.

All state lives in fixed-capacity slot stores addressed by linear scan. The
host ledger's value transfer and dividend distribution primitives are
abstracted behind the Cash interface; caller identity and attached value of
the in-flight invocation travel through context.Context.

Every invocation runs as a whole-state transaction: a single mutex serializes
all operations and every validation happens before the first state write, so
a rejected call never leaves a partial mutation behind.
*/
package ethbridge
