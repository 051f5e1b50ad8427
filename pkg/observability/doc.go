/*
Package observability provides tools for monitoring the onboarding flow.

It includes Prometheus metrics fed by lifecycle hooks, a structured logging
hook set and a helper to fan one event out to several hook sets.
*/
package observability
