// Package rental contains the rental contract entity and its pricing engine.
//
// A Rental binds a delivery rider to a motorcycle over one of five billing
// plans (7/15/30/45/50 days). The pricing engine works at calendar-day
// granularity: all instants are truncated to UTC midnight before any day
// arithmetic. Previewing a return is a pure computation producing an
// immutable PriceBreakdown; closing a rental commits one such breakdown as
// the final charge and is irreversible.
//
// Pricing rules:
//   - each plan fixes a daily price (longer plans are cheaper per day)
//   - used days count both the start day and the return day, capped at the
//     plan length for the base value
//   - returning before the expected end incurs a penalty on the unused days
//     for the two shortest plans only (7 days: 20%, 15 days: 40%)
//   - returning after the expected end charges a flat late fee per extra day
//     (50 currency units by default)
package rental
