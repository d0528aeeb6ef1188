// Package sentiment calls the external classifier service and normalizes its
// responses into a three-valued label.
//
// The call chain is a fixed state machine: one primary attempt, one primary
// retry after a fixed backoff when the primary answered 502/503/504, one
// fallback attempt, then the neutral default. Classification never fails
// outward — a classifier outage degrades every message to neutral.
package sentiment
