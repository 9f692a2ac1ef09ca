package testutil

import (
	"sync"

	"github.com/raiconsult/web/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var bootOnce sync.Once
var bootErr error

// BootTemplatesOnce boots the template engine for handler tests. Shared
// layout templates are registered here; feature templates register
// themselves via init() when the feature package under test is imported,
// so both are compiled into the one namespace the first time this runs.
// Later calls are no-ops returning the original boot result.
func BootTemplatesOnce() error {
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()

		eng := templates.New(false)
		logger := zap.NewNop()

		bootErr = eng.Boot(logger)
		if bootErr != nil {
			return
		}

		templates.UseEngine(eng, logger)
	})
	return bootErr
}

// MustBootTemplates boots templates, failing the test on error.
//
//	func TestHandler(t *testing.T) {
//	    testutil.MustBootTemplates(t)
//	    ...
//	}
func MustBootTemplates(t interface{ Fatalf(string, ...any) }) {
	if err := BootTemplatesOnce(); err != nil {
		t.Fatalf("failed to boot templates: %v", err)
	}
}
