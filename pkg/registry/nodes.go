package registry

import (
	"github.com/orchahq/nodekit/pkg/nodes/datetime"
	"github.com/orchahq/nodekit/pkg/nodes/editfields"
	"github.com/orchahq/nodekit/pkg/nodes/eventreceived"
	"github.com/orchahq/nodekit/pkg/nodes/filternode"
	"github.com/orchahq/nodekit/pkg/nodes/httprequest"
	"github.com/orchahq/nodekit/pkg/nodes/ifnode"
	"github.com/orchahq/nodekit/pkg/schema"
)

// RegisterBuiltins registers the node descriptions shipped with the module.
func (r *Registry) RegisterBuiltins() error {
	builtins := []*schema.NodeDescription{
		httprequest.Description(),
		ifnode.Description(),
		filternode.Description(),
		editfields.Description(),
		datetime.Description(),
		eventreceived.Description(),
	}

	for _, desc := range builtins {
		if err := r.Register(desc); err != nil {
			return err
		}
	}

	return nil
}
