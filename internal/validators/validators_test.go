package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Aa1!aa", true},
		{"Secret#2024", true},
		{"A!bcd", false},
		{"abcdef!", false},
		{"Abcdefg", false},
		{"Abc de!", false},
		{"Abcdé!", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@x.com"))
	assert.True(t, IsEmail("first.last@sub.example.org"))
	assert.False(t, IsEmail("a@x"))
	assert.False(t, IsEmail("a x@y.com"))
	assert.False(t, IsEmail("@x.com"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("0812345678"))
	assert.False(t, IsPhone("081234567"))
	assert.False(t, IsPhone("08123456789"))
	assert.False(t, IsPhone("08-1234567"))
}
