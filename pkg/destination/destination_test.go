package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "Host", Host.String())
	assert.Equal(t, "Output", Output.String())
	assert.Equal(t, "Xml", Xml.String())
	assert.Equal(t, "unknown", Destination(99).String())
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 11)
	assert.Equal(t, Append, all[0])
	assert.Equal(t, Xml, all[len(all)-1])
}

func TestCapabilityTable(t *testing.T) {
	tests := []struct {
		name string
		dest Destination
		want Capability
	}{
		{"host", Host, Capability{Trim: true, SuppressEmpty: true, Annotate: true, Separator: true}},
		{"append_file", Append, Capability{NeedsPath: true, Separator: true}},
		{"replace_file", Replace, Capability{NeedsPath: true, Separator: true}},
		{"log_file", Log, Capability{NeedsPath: true, Trim: true, SuppressEmpty: true, Annotate: true, Separator: true}},
		{"debug_channel", Debug, Capability{Trim: true, SuppressEmpty: true}},
		{"error_channel", Error, Capability{Trim: true}},
		{"warning_channel", Warning, Capability{Trim: true, SuppressEmpty: true}},
		{"verbose_channel", Verbose, Capability{Trim: true, SuppressEmpty: true, Annotate: true}},
		{"info_channel", Info, Capability{SuppressEmpty: true}},
		{"output", Output, Capability{}},
		{"xml_file", Xml, Capability{NeedsPath: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dest.Capability())
		})
	}
}
