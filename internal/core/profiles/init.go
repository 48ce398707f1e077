// Package profiles registers the deployment profiles known to this build.
//
// Each event deployment historically hand-duplicated its lookup code to
// follow the form's column drift. Profiles replace that with a declarative
// table per deployment: import this package for its side effects and every
// profile becomes available through the core registry.
package profiles

import "github.com/summitops/regdesk/internal/core"

func init() {
	core.Register(Tally)
}
