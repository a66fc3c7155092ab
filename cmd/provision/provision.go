package provision

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/operator-framework/nondet/pkg/nondet"
	"github.com/operator-framework/nondet/pkg/varstore"
)

// ClusterSpec describes the hosts available for provisioning and the
// guests to place on them.
type ClusterSpec struct {
	Hosts  []MachineSpec `yaml:"hosts"`
	Guests []MachineSpec `yaml:"guests"`
}

// MachineSpec is a host capacity or a guest requirement.
type MachineSpec struct {
	Name string `yaml:"name"`
	RAM  int    `yaml:"ram"`
	CPU  int    `yaml:"cpu"`
	Disk int    `yaml:"disk"`
}

// LoadClusterSpec reads a yaml cluster description.
func LoadClusterSpec(r io.Reader) (*ClusterSpec, error) {
	var spec ClusterSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("error parsing cluster spec: %w", err)
	}
	if len(spec.Hosts) == 0 {
		return nil, fmt.Errorf("cluster spec declares no hosts")
	}
	return &spec, nil
}

// Placement maps guest name to the host it was assigned to.
type Placement map[string]string

// Place returns a computation assigning every guest in spec to a host
// with enough free ram, cpu, and disk. Remaining capacity is tracked in
// a varstore rebuilt per replay, so branches never see each other's
// allocations. Branches that overcommit a host are pruned.
func Place(spec *ClusterSpec) nondet.Computation[Placement] {
	return func(ctx nondet.Context) (Placement, error) {
		store := varstore.New()
		hosts := store.Top().Child("hosts")
		for _, h := range spec.Hosts {
			ref := hosts.Child(h.Name)
			if err := ref.Child("ram").Put(h.RAM); err != nil {
				return nil, err
			}
			if err := ref.Child("cpu").Put(h.CPU); err != nil {
				return nil, err
			}
			if err := ref.Child("disk").Put(h.Disk); err != nil {
				return nil, err
			}
		}

		placement := Placement{}
		for _, guest := range spec.Guests {
			host := nondet.Choose(ctx, spec.Hosts)
			ref := hosts.Child(host.Name)
			if !allocate(ref, "ram", guest.RAM) ||
				!allocate(ref, "cpu", guest.CPU) ||
				!allocate(ref, "disk", guest.Disk) {
				ctx.Prune()
			}
			placement[guest.Name] = host.Name
		}
		return placement, nil
	}
}

// allocate subtracts amount from the named resource, reporting false when
// the host has too little left.
func allocate(host varstore.Ref, resource string, amount int) bool {
	ref := host.Child(resource)
	free, err := ref.Get()
	if err != nil {
		return false
	}
	left := free.(int) - amount
	if left < 0 {
		return false
	}
	return ref.Put(left) == nil
}
