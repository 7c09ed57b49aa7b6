package gitlab

import (
	"net/url"
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessLevel(t *testing.T) {
	tests := []struct {
		name string
		want AccessLevel
	}{
		{"guest", GuestAccess},
		{"reporter", ReporterAccess},
		{"Reporter", ReporterAccess},
		{"developer", DeveloperAccess},
		{"DEVELOPER", DeveloperAccess},
		{"master", MasterAccess},
		{"MaStEr", MasterAccess},
		{"owner", OwnerAccess},
		{"admin", GuestAccess},
		{"", GuestAccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAccessLevel(tt.name))
		})
	}
}

func TestAccessLevel_Values(t *testing.T) {
	assert.Equal(t, 10, int(GuestAccess))
	assert.Equal(t, 20, int(ReporterAccess))
	assert.Equal(t, 30, int(DeveloperAccess))
	assert.Equal(t, 40, int(MasterAccess))
	assert.Equal(t, 50, int(OwnerAccess))
}

func TestAccessLevel_EncodeValues(t *testing.T) {
	opts := struct {
		UserID      int          `url:"user_id"`
		AccessLevel *AccessLevel `url:"access_level,omitempty"`
	}{UserID: 3, AccessLevel: Ptr(ReporterAccess)}

	values, err := query.Values(opts)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"user_id": {"3"}, "access_level": {"20"}}, values)
}
