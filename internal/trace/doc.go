// Package trace reads profiler CSV exports (msprof op_summary, op_statistic
// and friends) and reduces each run directory to a single kernel latency in
// milliseconds.
//
// Nothing in this package is fatal. Unreadable files, headers without a
// timing column and malformed cells all degrade to "skip and continue";
// the reasons are recorded on the returned Extraction for diagnostics.
package trace
