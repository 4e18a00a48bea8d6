package supabase

import (
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnreachable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"url error", &url.Error{Op: "Post", URL: "https://x.supabase.co", Err: syscall.ECONNREFUSED}, true},
		{"wrapped url error", fmt.Errorf("failed to list photos: %w",
			&url.Error{Op: "Get", URL: "https://x.supabase.co", Err: syscall.ECONNRESET}), true},
		{"refused as text", errors.New("response error: dial tcp 127.0.0.1:1: connect: connection refused"), true},
		{"dns as text", errors.New("lookup demo.supabase.co: no such host"), true},
		{"timeout as text", errors.New("read tcp 10.0.0.2:443: i/o timeout"), true},
		{"provider rejection", errors.New("response status code 400: invalid login credentials"), false},
		{"store rejection", errors.New(`{"message":"duplicate key value violates unique constraint"}`), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUnreachable(tc.err))
		})
	}
}
