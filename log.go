package rdfxml

import "github.com/golang/glog"

// trace emits a verbose, ambient log line at a state-machine transition.
// It never affects parsing: disabled by default, it costs one boolean
// check; WithVerbose(true) forces it on for a single Decoder regardless of
// glog's process-wide -v flag, the way a caller debugging one bad document
// would want without having to touch global flags.
func (d *Decoder) trace(format string, args ...interface{}) {
	if d.verbose || bool(glog.V(2)) {
		glog.Infof(format, args...)
	}
}
