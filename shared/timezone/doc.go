// Package timezone pins every wall-clock read and parse to the
// organizational timezone (America/Fortaleza unless APP_TIMEZONE overrides
// it). Scheduling rules compare dates and times in this zone; code outside
// tests should never call time.Now directly for business decisions.
package timezone
