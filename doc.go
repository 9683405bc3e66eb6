// Package fintrack provides the records and computations behind a set of
// personal-finance trackers. It is local-first: every tracker lives in its own
// named slot of a durable key/value store on the user's device.
//
// The trackers are:
//   - Accounts: bank accounts and their balances, summed on the dashboard.
//   - Goals: saving goals with a target, a duration and a daily amount.
//   - Debts: debts being paid off toward a target date.
//   - Envelopes: budget envelopes, an allocation that spending may exceed.
//   - Emergency Fund: a single safety-net record with months of expenses covered.
//   - Piggybanks: daily savings ledgers with a streak and a bounded history.
//   - Notes: free-form "future me" notes.
//
// All amounts are stored in the base currency (PHP). Display currencies are a
// pure conversion through a fixed table of rates, see Currency.
//
// The derived values (progress, remaining amounts, countdowns, streaks) are
// computed by pure functions that take the current date as an argument, the
// Book type is the gateway between those functions and the store.
//
// This package serves as the foundational logic for the `ft` command-line
// tool.
package fintrack
