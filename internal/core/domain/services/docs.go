// Package services provides the domain services behind the turnover reports.
// They work on plain rows read from storage and hold no state.
//
// The package includes:
//   - ResolveTimeBorders: turns optional report dates into an inclusive time window
//   - TurnoverAggregator: ranks sales rows by quantity into fixed-size top lists
//   - WeeklyTurnover: rolls archived order totals into the trailing seven days
package services
