package domain

import (
	"fmt"
	"strconv"
)

// UnitID - упакованный идентификатор юнита (Team + Index)
type UnitID uint32

// Конфигурация битов
const (
	bitsIndex = 24
	bitsTeam  = 8

	shiftTeam = bitsIndex

	maskIndex = (1 << bitsIndex) - 1 // 0x00FFFFFF
	maskTeam  = (1 << bitsTeam) - 1  // 0xFF
)

// PackUnitID создает ID из команды и порядкового номера
func PackUnitID(team Team, index uint32) UnitID {
	id := index & maskIndex
	id |= (uint32(team) & maskTeam) << shiftTeam
	return UnitID(id)
}

func (id UnitID) Team() Team {
	return Team((id >> shiftTeam) & maskTeam)
}

func (id UnitID) Index() uint32 {
	return uint32(id & maskIndex)
}

// MarshalText нужен для логов в JSON и ключей yaml
func (id UnitID) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(id), 10)), nil
}

// String для логов: [team:idx]
func (id UnitID) String() string {
	return fmt.Sprintf("[%s:%d]", id.Team(), id.Index())
}
