// Package procs implements the process-table collaborator on top of
// gopsutil. All lookups are exact-name: a query for "onboard" will not match
// "onboard-settings" or any other process sharing a prefix.
package procs
