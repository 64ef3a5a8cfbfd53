// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The todos-backend Authors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8000", wantHost: "localhost", wantPort: 8000},
		{name: "ip address", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "all interfaces", input: "0.0.0.0:80", wantHost: "0.0.0.0", wantPort: 80},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:eighty", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bogus host", input: "not-an-ip:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	addr := NetAddress{Host: "localhost", Port: 8000}
	assert.Equal(t, "localhost:8000", addr.String())

	var empty NetAddress
	assert.Empty(t, empty.String(), "unset address must merge away, not render \":0\"")
}
