package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	s := StartSpinner(&buf, "Copying template...")
	s.Success("Template copied")

	assert.Contains(t, buf.String(), "Copying template...\n")
	assert.Contains(t, buf.String(), "Template copied\n")
}

func TestSpinnerError(t *testing.T) {
	var buf bytes.Buffer

	s := StartSpinner(&buf, "Copying template...")
	s.Error("Failed to copy templates")

	assert.Contains(t, buf.String(), "Failed to copy templates\n")
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := StartSpinner(&buf, "working")
	s.Success("done")
	s.Success("done again")
	assert.Contains(t, buf.String(), "done again")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("copy failed: template not found"))

	out := buf.String()
	assert.Contains(t, out, "ERROR!")
	assert.Contains(t, out, "copy failed: template not found")
	assert.Contains(t, out, "Exiting with error")
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, "node %s is too old", "v16")
	assert.Contains(t, buf.String(), "warning: node v16 is too old")
}
