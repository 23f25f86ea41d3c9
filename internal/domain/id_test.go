package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitID_PackUnpack(t *testing.T) {
	tests := []struct {
		name  string
		team  Team
		index uint32
	}{
		{"civilian zero", TeamCivilian, 0},
		{"phalanx", TeamPhalanx, 17},
		{"alien max index", TeamAlien, maskIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackUnitID(tt.team, tt.index)
			assert.Equal(t, tt.team, id.Team())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestUnitID_IndexOverflowMasked(t *testing.T) {
	id := PackUnitID(TeamAlien, maskIndex+1)
	assert.Equal(t, uint32(0), id.Index())
	assert.Equal(t, TeamAlien, id.Team())
}

func TestUnitID_String(t *testing.T) {
	id := PackUnitID(TeamAlien, 3)
	assert.Equal(t, "[alien:3]", id.String())

	text, err := id.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "117440515", string(text))
}
