package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailIsValid(t *testing.T) {
	tests := []struct {
		name  string
		email Email
		want  bool
	}{
		{"normal address", "emma@mergington.edu", true},
		{"missing at", "emma.mergington.edu", false},
		{"empty local part", "@mergington.edu", false},
		{"empty domain", "emma@", false},
		{"contains space", "emma smith@mergington.edu", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.email.IsValid())
		})
	}
}

func TestRole(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleOrganizer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("teacher").IsValid())

	assert.True(t, RoleStudent.IsRanked())
	assert.False(t, RoleOrganizer.IsRanked())
	assert.False(t, RoleAdmin.IsRanked())
}

func TestNewUser(t *testing.T) {
	valid := NewUserParams{
		ID:            "u1",
		Name:          "Emma Wilson",
		Email:         "emma@mergington.edu",
		Role:          RoleStudent,
		InitialPoints: 120,
	}

	t.Run("creates a valid user", func(t *testing.T) {
		u, err := NewUser(valid)
		require.NoError(t, err)
		assert.Equal(t, Email("emma@mergington.edu"), u.Email)
		assert.Equal(t, Points(120), u.Points)
		assert.True(t, u.IsStudent())
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("rejects bad email", func(t *testing.T) {
		p := valid
		p.Email = "not-an-email"
		_, err := NewUser(p)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		p := valid
		p.Name = "   "
		_, err := NewUser(p)
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		p := valid
		p.Role = "principal"
		_, err := NewUser(p)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects negative points", func(t *testing.T) {
		p := valid
		p.InitialPoints = -5
		_, err := NewUser(p)
		assert.ErrorIs(t, err, ErrInvalidPoints)
	})
}

func TestUserAddPoints(t *testing.T) {
	u, err := NewUser(NewUserParams{
		ID:    "u2",
		Name:  "Noah Brown",
		Email: "noah@mergington.edu",
		Role:  RoleStudent,
	})
	require.NoError(t, err)

	u.AddPoints(5)
	u.AddPoints(10)
	assert.Equal(t, Points(15), u.Points)
}

func TestUserClone(t *testing.T) {
	u, err := NewUser(NewUserParams{
		ID:            "u3",
		Name:          "Sophia Martinez",
		Email:         "sophia@mergington.edu",
		Role:          RoleStudent,
		InitialPoints: 110,
	})
	require.NoError(t, err)

	clone := u.Clone()
	clone.AddPoints(50)

	assert.Equal(t, Points(110), u.Points)
	assert.Equal(t, Points(160), clone.Points)
}
