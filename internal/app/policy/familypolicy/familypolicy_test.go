package familypolicy_test

import (
	"testing"

	"github.com/dalemusser/pantryhub/internal/app/policy/familypolicy"
	"github.com/dalemusser/pantryhub/internal/domain/models"
)

func TestCanShareFamily(t *testing.T) {
	tests := []struct {
		method models.LoginMethod
		want   bool
	}{
		{models.LoginMethodGoogle, true},
		{models.LoginMethodEmail, false},
		{models.LoginMethod(""), false},
		{models.LoginMethod("facebook"), false},
	}

	for _, tt := range tests {
		if got := familypolicy.CanShareFamily(tt.method); got != tt.want {
			t.Errorf("CanShareFamily(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}
