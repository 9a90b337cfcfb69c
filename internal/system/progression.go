package system

import (
	"errors"
	"fmt"

	"tombs/internal/logger"
	"tombs/internal/message"
	"tombs/internal/session"

	"github.com/sirupsen/logrus"
)

// XP needed for the next level is LevelUpBase + level*LevelUpFactor.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// Upgrade is one of the permanent stat choices offered on level up.
type Upgrade int

const (
	UpgradeConstitution Upgrade = iota
	UpgradeStrength
	UpgradeAgility
	numUpgrades
)

// ErrInputClosed is returned by choosers whose input source has gone away,
// such as a closed terminal or a dropped SSH connection.
var ErrInputClosed = errors.New("input closed")

// UpgradeChooser asks the player to pick an upgrade. An out-of-range index
// with a nil error means no valid choice was made yet; a non-nil error
// means no choice will ever come.
type UpgradeChooser interface {
	ChooseUpgrade(title string, options []string) (int, error)
}

// XPToLevel returns the xp threshold for leaving the given level.
func XPToLevel(level int) int {
	return LevelUpBase + level*LevelUpFactor
}

// CanLevelUp reports whether the player has enough xp for the next level.
func CanLevelUp(s *session.Session) bool {
	p := s.Player()
	return p.Fighter != nil && p.Fighter.XP >= XPToLevel(p.Level)
}

// UpgradeOptions returns the menu lines for the three upgrades.
func UpgradeOptions(s *session.Session) []string {
	f := s.Player().Fighter
	return []string{
		fmt.Sprintf("Constitution (+20 HP, from %d)", f.BaseMaxHP),
		fmt.Sprintf("Strength (+1 attack, from %d)", f.BasePower),
		fmt.Sprintf("Agility (+1 defense, from %d)", f.BaseDefense),
	}
}

// ApplyUpgrade makes a permanent stat change to the player.
func ApplyUpgrade(s *session.Session, u Upgrade) {
	f := s.Player().Fighter
	switch u {
	case UpgradeConstitution:
		f.BaseMaxHP += 20
		f.HP += 20
	case UpgradeStrength:
		f.BasePower++
	case UpgradeAgility:
		f.BaseDefense++
	}
}

// LevelUp checks the xp threshold and, when it is met, raises the player's
// level, keeps the surplus xp, and blocks on chooser until one of the three
// upgrades is picked. There is no way to skip the choice. It reports
// whether a level was gained. If the chooser fails the level is taken back,
// leaving the xp in place for the next check, and the error is returned.
func LevelUp(s *session.Session, chooser UpgradeChooser) (bool, error) {
	if !CanLevelUp(s) {
		return false, nil
	}
	p := s.Player()
	need := XPToLevel(p.Level)
	p.Level++
	s.Log(fmt.Sprintf("Your skills have increased! You are now level %d!", p.Level), message.Yellow)

	options := UpgradeOptions(s)
	for {
		i, err := chooser.ChooseUpgrade("Level up! Choose skill to increase:", options)
		if err != nil {
			p.Level--
			return false, fmt.Errorf("level up: %w", err)
		}
		if i >= 0 && i < int(numUpgrades) {
			p.Fighter.XP -= need
			ApplyUpgrade(s, Upgrade(i))
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"run":   s.RunID,
		"level": p.Level,
		"xp":    p.Fighter.XP,
	}).Info("level up")
	return true, nil
}
