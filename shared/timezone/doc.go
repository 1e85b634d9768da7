// Package timezone pins every wall-clock decision to the hotel's timezone (APP_TIMEZONE).
//
// Arrival and departure lists, booking dates and bill numbers all depend on
// "today" as the front desk sees it, not as the server does. The location is
// loaded once from config when the package is imported and falls back to UTC
// when the name is empty or unknown.
package timezone
