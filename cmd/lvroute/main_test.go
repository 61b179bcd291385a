package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hamlet: Chestnut Close 1-2-3 two-way, and a one-way service lane 3→4.
const hamlet = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="52.6500" lon="-0.7000"/>
  <node id="2" lat="52.6510" lon="-0.7000"/>
  <node id="3" lat="52.6520" lon="-0.7000"/>
  <node id="4" lat="52.6520" lon="-0.6990"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/>
    <tag k="highway" v="residential"/>
    <tag k="name" v="Chestnut Close"/>
  </way>
  <way id="11">
    <nd ref="3"/><nd ref="4"/>
    <tag k="highway" v="service"/>
    <tag k="name" v="Mill Lane"/>
    <tag k="oneway" v="yes"/>
  </way>
</osm>`

func writeMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hamlet.osm")
	require.NoError(t, os.WriteFile(path, []byte(hamlet), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	m := writeMap(t)

	out, err := run(t, "--map", m, "--log-level", "error", "route", "1", "4", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: ")
	assert.Contains(t, out, "route: Chestnut Close -> Mill Lane")

	out, err = run(t, "--map", m, "--log-level", "error", "route", "4", "1")
	require.NoError(t, err)
	assert.Equal(t, "no path found\n", out)
}

func TestRouteCommand_JSON(t *testing.T) {
	out, err := run(t, "--map", writeMap(t), "--log-level", "error", "route", "1", "3", "--json")
	require.NoError(t, err)
	var res struct {
		Status int
		Cost   uint64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Status)
	assert.InDelta(t, 222, float64(res.Cost), 4)
}

func TestRouteCommand_Errors(t *testing.T) {
	m := writeMap(t)

	_, err := run(t, "--map", m, "route", "1")
	assert.Error(t, err, "two ids required")

	_, err = run(t, "--map", m, "route", "1", "x9")
	assert.ErrorContains(t, err, "unsigned integer")

	_, err = run(t, "--map", m, "--log-level", "error", "route", "1", "99")
	assert.ErrorContains(t, err, "node not in graph")

	_, err = run(t, "route", "1", "2")
	assert.ErrorContains(t, err, "map path is empty")

	_, err = run(t, "--map", m, "--log-level", "shout", "route", "1", "2")
	assert.ErrorContains(t, err, "log.level")
}

func TestReachCommand(t *testing.T) {
	m := writeMap(t)
	out, err := run(t, "--map", m, "--log-level", "error", "reach", "2", "--max-cost", "120")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "reachable: 3", lines[0])
	assert.Len(t, lines, 4)

	_, err = run(t, "--map", m, "reach", "2")
	assert.ErrorContains(t, err, "--max-cost")
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "--map", writeMap(t), "--log-level", "error", "stats")
	require.NoError(t, err)
	var st map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 4, st["nodes"])
	assert.Equal(t, 5, st["arcs"])
	// 1↔2↔3 loop together; 4 is a dead end off a one-way lane.
	assert.Equal(t, 2, st["components"])
	assert.Equal(t, 3, st["largest_component"])
}

func TestConfigFile(t *testing.T) {
	m := writeMap(t)
	cfgPath := filepath.Join(t.TempDir(), "lvroute.yaml")
	body := "map:\n  path: " + m + "\nsearch:\n  default_max_cost: 50\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	// 1→3 is about 222 m, beyond the configured default ceiling.
	out, err := run(t, "--config", cfgPath, "route", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "no path found\n", out)

	out, err = run(t, "--config", cfgPath, "route", "1", "3", "--max-cost", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: ")
}

func TestHopsCommand(t *testing.T) {
	m := writeMap(t)
	out, err := run(t, "--map", m, "--log-level", "error", "hops", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "hops: 3\n[1 2 3 4]\n", out)

	out, err = run(t, "--map", m, "--log-level", "error", "hops", "4", "1")
	require.NoError(t, err)
	assert.Equal(t, "no path found\n", out)
}
