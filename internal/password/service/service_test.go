package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestService_HashAndVerify(t *testing.T) {
	svc := NewService("test-pepper")

	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := svc.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotContains(t, hash, "correct horse")

		assert.True(t, svc.Verify("correct horse battery staple", hash))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := svc.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.False(t, svc.Verify("correct horse battery staplex", hash))
	})

	t.Run("same password hashes to different strings", func(t *testing.T) {
		first, err := svc.Hash("hunter2hunter2")
		require.NoError(t, err)
		second, err := svc.Hash("hunter2hunter2")
		require.NoError(t, err)

		// per-password salt
		assert.NotEqual(t, first, second)
	})

	t.Run("different pepper does not verify", func(t *testing.T) {
		hash, err := svc.Hash("hunter2hunter2")
		require.NoError(t, err)

		other := NewService("another-pepper")
		assert.False(t, other.Verify("hunter2hunter2", hash))
	})

	t.Run("garbage hash does not verify", func(t *testing.T) {
		assert.False(t, svc.Verify("anything", "not-a-hash"))
	})
}

func TestService_HashConcurrent(t *testing.T) {
	svc := NewService("test-pepper")

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			password := fmt.Sprintf("concurrent-password-%d", i)
			hash, err := svc.Hash(password)
			if err != nil {
				return err
			}
			if !svc.Verify(password, hash) {
				return fmt.Errorf("hash for %q did not verify", password)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestService_CheckStrength(t *testing.T) {
	svc := NewService("test-pepper")

	tests := []struct {
		name      string
		password  string
		wantValid bool
		wantScore int
	}{
		{
			name:      "denylisted password scores zero",
			password:  "password",
			wantValid: false,
			wantScore: 0,
		},
		{
			name:      "denylist match is case-insensitive",
			password:  "MyQWERTYKey1!aaa",
			wantValid: false,
			wantScore: 0,
		},
		{
			name:      "denylist matches as substring",
			password:  "xXletmeinXx9!",
			wantValid: false,
			wantScore: 0,
		},
		{
			name:      "strong password with all classes scores ten",
			password:  "Tr0ub4dor&3!",
			wantValid: true,
			wantScore: 10,
		},
		{
			name:      "valid short password scores below maximum",
			password:  "Ab1!efgh",
			wantValid: true,
			wantScore: 9,
		},
		{
			name:      "too short",
			password:  "Ab1!",
			wantValid: false,
			wantScore: 5,
		},
		{
			name:      "missing uppercase",
			password:  "trombone&3!x",
			wantValid: false,
			wantScore: 6,
		},
		{
			name:      "missing special character",
			password:  "Tr0mb0ne3333",
			wantValid: false,
			wantScore: 5,
		},
		{
			name:      "empty password",
			password:  "",
			wantValid: false,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.CheckStrength(tt.password)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantScore, result.Score)
			if tt.wantValid {
				assert.Empty(t, result.Errors)
			} else {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}

func TestService_GeneratePassword(t *testing.T) {
	svc := NewService("test-pepper")

	t.Run("always contains every character class", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			password, err := svc.GeneratePassword(16)
			require.NoError(t, err)
			require.Len(t, password, 16)

			assert.True(t, hasUpperCase(password), "missing uppercase in %q", password)
			assert.True(t, hasLowerCase(password), "missing lowercase in %q", password)
			assert.True(t, hasNumber(password), "missing digit in %q", password)
			assert.True(t, hasSpecialChar(password), "missing special in %q", password)
		}
	})

	t.Run("minimum length", func(t *testing.T) {
		password, err := svc.GeneratePassword(4)
		require.NoError(t, err)
		assert.Len(t, password, 4)
	})

	t.Run("length below four is rejected", func(t *testing.T) {
		_, err := svc.GeneratePassword(3)
		assert.Error(t, err)
	})

	t.Run("generated passwords pass the strength check", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			password, err := svc.GeneratePassword(16)
			require.NoError(t, err)

			result := svc.CheckStrength(password)
			assert.True(t, result.IsValid, "generated password %q failed: %v", password, result.Errors)
		}
	})

	t.Run("successive passwords differ", func(t *testing.T) {
		first, err := svc.GeneratePassword(16)
		require.NoError(t, err)
		second, err := svc.GeneratePassword(16)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
