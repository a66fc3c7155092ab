package provision

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/nondet/pkg/solver"
)

func TestLoadClusterSpec(t *testing.T) {
	specFile, err := os.Open(filepath.Join("testdata", "cluster.yaml"))
	require.NoError(t, err)
	defer specFile.Close()

	spec, err := LoadClusterSpec(specFile)
	require.NoError(t, err)
	assert.Len(t, spec.Hosts, 2)
	assert.Len(t, spec.Guests, 3)
	assert.Equal(t, MachineSpec{Name: "host-a", RAM: 128, CPU: 16, Disk: 2000}, spec.Hosts[0])
}

func TestLoadClusterSpecRejectsNoHosts(t *testing.T) {
	_, err := LoadClusterSpec(strings.NewReader("guests:\n  - name: web\n    ram: 1\n"))
	assert.ErrorContains(t, err, "no hosts")
}

func TestPlaceRespectsCapacity(t *testing.T) {
	spec := &ClusterSpec{
		Hosts: []MachineSpec{
			{Name: "a", RAM: 4},
			{Name: "b", RAM: 4},
		},
		Guests: []MachineSpec{
			{Name: "g1", RAM: 2},
			{Name: "g2", RAM: 2},
			{Name: "g3", RAM: 2},
		},
	}

	placements, err := solver.All(context.Background(), Place(spec))
	require.NoError(t, err)

	// three guests over two hosts, never three on one host
	assert.Len(t, placements, 6)
	for _, placement := range placements {
		perHost := map[string]int{}
		for _, host := range placement {
			perHost[host]++
		}
		for host, count := range perHost {
			assert.LessOrEqual(t, count, 2, "host %s is overcommitted", host)
		}
	}
}

func TestPlaceImpossible(t *testing.T) {
	spec := &ClusterSpec{
		Hosts:  []MachineSpec{{Name: "tiny", RAM: 1}},
		Guests: []MachineSpec{{Name: "big", RAM: 2}},
	}
	placements, err := solver.All(context.Background(), Place(spec))
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestRunPrintsPlacement(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, filepath.Join("testdata", "cluster.yaml")))
	assert.Equal(t, "cache -> host-a\ndb -> host-a\nweb -> host-a\n", buf.String())
}
