package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Boss bar flags.
const (
	BossBarDarkenSky byte = 0x01
	BossBarDragonBar byte = 0x02
	BossBarCreateFog byte = 0x04
)

// BossBarAction is one change to a boss bar.
type BossBarAction interface {
	bossBarAction() int32
}

type AddBossBar struct {
	Title    Chat
	Health   float32
	Color    BossBarColor
	Division BossBarDivision
	Flags    byte
}

type RemoveBossBar struct{}

type UpdateBossBarHealth struct {
	Health float32
}

type UpdateBossBarTitle struct {
	Title Chat
}

type UpdateBossBarStyle struct {
	Color    BossBarColor
	Division BossBarDivision
}

type UpdateBossBarFlags struct {
	Flags byte
}

func (AddBossBar) bossBarAction() int32          { return 0 }
func (RemoveBossBar) bossBarAction() int32       { return 1 }
func (UpdateBossBarHealth) bossBarAction() int32 { return 2 }
func (UpdateBossBarTitle) bossBarAction() int32  { return 3 }
func (UpdateBossBarStyle) bossBarAction() int32  { return 4 }
func (UpdateBossBarFlags) bossBarAction() int32  { return 5 }

func writeBossBarStyle(w io.Writer, c BossBarColor, d BossBarDivision) (err error) {
	if err = WriteVarIntEnum(w, c, BossBarColors); err != nil {
		return
	}
	return WriteVarIntEnum(w, d, BossBarDivisions)
}

func readBossBarStyle(r *FrameReader) (c BossBarColor, d BossBarDivision, err error) {
	if c, err = ReadVarIntEnum(r, BossBarColors); err != nil {
		return
	}
	d, err = ReadVarIntEnum(r, BossBarDivisions)
	return
}

func writeBossBarAction(w io.Writer, v BossBarAction) (err error) {
	if v == nil {
		return fmt.Errorf("boss bar action is required")
	}
	if err = WriteVarInt(w, v.bossBarAction()); err != nil {
		return
	}

	switch a := v.(type) {
	case AddBossBar:
		if err = WriteChat(w, a.Title); err != nil {
			return
		}
		if err = WriteFloat(w, a.Health); err != nil {
			return
		}
		if err = writeBossBarStyle(w, a.Color, a.Division); err != nil {
			return
		}
		return WriteByte(w, a.Flags)
	case RemoveBossBar:
		return nil
	case UpdateBossBarHealth:
		return WriteFloat(w, a.Health)
	case UpdateBossBarTitle:
		return WriteChat(w, a.Title)
	case UpdateBossBarStyle:
		return writeBossBarStyle(w, a.Color, a.Division)
	case UpdateBossBarFlags:
		return WriteByte(w, a.Flags)
	}
	return fmt.Errorf("unsupported boss bar action %T", v)
}

func readBossBarAction(r *FrameReader) (v BossBarAction, err error) {
	action, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch action {
	case 0:
		var a AddBossBar
		if a.Title, err = ReadChat(r); err != nil {
			return
		}
		if a.Health, err = ReadFloat(r); err != nil {
			return
		}
		if a.Color, a.Division, err = readBossBarStyle(r); err != nil {
			return
		}
		if a.Flags, err = r.ReadByte(); err != nil {
			return
		}
		return a, nil
	case 1:
		return RemoveBossBar{}, nil
	case 2:
		var a UpdateBossBarHealth
		if a.Health, err = ReadFloat(r); err != nil {
			return
		}
		return a, nil
	case 3:
		var a UpdateBossBarTitle
		if a.Title, err = ReadChat(r); err != nil {
			return
		}
		return a, nil
	case 4:
		var a UpdateBossBarStyle
		if a.Color, a.Division, err = readBossBarStyle(r); err != nil {
			return
		}
		return a, nil
	case 5:
		var a UpdateBossBarFlags
		if a.Flags, err = r.ReadByte(); err != nil {
			return
		}
		return a, nil
	}
	return nil, unknown("boss bar action", action)
}

// @gen:r,w,cb=0x0A
type BossBar struct {
	UUID   uuid.UUID     `field:"UUID"`
	Action BossBarAction `write:"writeBossBarAction" read:"readBossBarAction"`
}

// Scoreboard display slots 3 to 18 are the sidebar of each team color.
const (
	DisplayList      int8 = 0
	DisplaySidebar   int8 = 1
	DisplayBelowName int8 = 2
)

// @gen:r,w,cb=0x4F
type DisplayObjective struct {
	Position  int8   `field:"SignedByte"`
	ScoreName string `field:"BoundedString" args:"16"`
}

// ObjectiveAction creates, removes or updates an objective.
type ObjectiveAction interface {
	objectiveMode() byte
}

type CreateObjective struct {
	DisplayName Chat
	Type        ObjectiveRenderType
}

type RemoveObjective struct{}

type UpdateObjective struct {
	DisplayName Chat
	Type        ObjectiveRenderType
}

func (CreateObjective) objectiveMode() byte { return 0 }
func (RemoveObjective) objectiveMode() byte { return 1 }
func (UpdateObjective) objectiveMode() byte { return 2 }

func writeObjectiveDisplay(w io.Writer, name Chat, typ ObjectiveRenderType) (err error) {
	if err = WriteChat(w, name); err != nil {
		return
	}
	return WriteVarIntEnum(w, typ, ObjectiveRenderTypes)
}

func readObjectiveDisplay(r *FrameReader) (name Chat, typ ObjectiveRenderType, err error) {
	if name, err = ReadChat(r); err != nil {
		return
	}
	typ, err = ReadVarIntEnum(r, ObjectiveRenderTypes)
	return
}

func writeObjectiveAction(w io.Writer, v ObjectiveAction) (err error) {
	if v == nil {
		return fmt.Errorf("objective action is required")
	}
	if err = WriteByte(w, v.objectiveMode()); err != nil {
		return
	}

	switch a := v.(type) {
	case CreateObjective:
		return writeObjectiveDisplay(w, a.DisplayName, a.Type)
	case RemoveObjective:
		return nil
	case UpdateObjective:
		return writeObjectiveDisplay(w, a.DisplayName, a.Type)
	}
	return fmt.Errorf("unsupported objective action %T", v)
}

func readObjectiveAction(r *FrameReader) (v ObjectiveAction, err error) {
	mode, err := r.ReadByte()
	if err != nil {
		return
	}

	switch mode {
	case 0:
		var a CreateObjective
		if a.DisplayName, a.Type, err = readObjectiveDisplay(r); err != nil {
			return
		}
		return a, nil
	case 1:
		return RemoveObjective{}, nil
	case 2:
		var a UpdateObjective
		if a.DisplayName, a.Type, err = readObjectiveDisplay(r); err != nil {
			return
		}
		return a, nil
	}
	return nil, unknown("objective action", int32(mode))
}

// @gen:r,w,cb=0x56
type UpdateObjectives struct {
	ObjectiveName string          `field:"BoundedString" args:"16"`
	Action        ObjectiveAction `write:"writeObjectiveAction" read:"readObjectiveAction"`
}

// TeamEntityMax bounds the entries of a team: player names or entity
// UUIDs.
const TeamEntityMax = 40

// Team friendly flags.
const (
	TeamFriendlyFire byte = 0x01
	TeamSeeInvisible byte = 0x02
)

// TeamInfo is the display and rule set of a team.
type TeamInfo struct {
	DisplayName       Chat
	FriendlyFlags     byte
	NameTagVisibility string
	CollisionRule     string
	Color             ChatFormatting
	Prefix            Chat
	Suffix            Chat
}

func writeTeamInfo(w io.Writer, v TeamInfo) (err error) {
	if err = WriteChat(w, v.DisplayName); err != nil {
		return
	}
	if err = WriteByte(w, v.FriendlyFlags); err != nil {
		return
	}
	if err = WriteBoundedString(w, v.NameTagVisibility, TeamEntityMax); err != nil {
		return
	}
	if err = WriteBoundedString(w, v.CollisionRule, TeamEntityMax); err != nil {
		return
	}
	if err = WriteVarIntEnum(w, v.Color, ChatFormattings); err != nil {
		return
	}
	if err = WriteChat(w, v.Prefix); err != nil {
		return
	}
	return WriteChat(w, v.Suffix)
}

func readTeamInfo(r *FrameReader) (v TeamInfo, err error) {
	if v.DisplayName, err = ReadChat(r); err != nil {
		return
	}
	if v.FriendlyFlags, err = r.ReadByte(); err != nil {
		return
	}
	if v.NameTagVisibility, err = ReadBoundedString(r, TeamEntityMax); err != nil {
		return
	}
	if v.CollisionRule, err = ReadBoundedString(r, TeamEntityMax); err != nil {
		return
	}
	if v.Color, err = ReadVarIntEnum(r, ChatFormattings); err != nil {
		return
	}
	if v.Prefix, err = ReadChat(r); err != nil {
		return
	}
	v.Suffix, err = ReadChat(r)
	return
}

func writeTeamEntity(w io.Writer, v string) error {
	return WriteBoundedString(w, v, TeamEntityMax)
}

func readTeamEntity(r *FrameReader) (string, error) {
	return ReadBoundedString(r, TeamEntityMax)
}

// TeamAction is one change to a team.
type TeamAction interface {
	teamMode() byte
}

type CreateTeam struct {
	Info     TeamInfo
	Entities []string
}

type RemoveTeam struct{}

type UpdateTeamInfo struct {
	Info TeamInfo
}

type AddTeamEntities struct {
	Entities []string
}

type RemoveTeamEntities struct {
	Entities []string
}

func (CreateTeam) teamMode() byte         { return 0 }
func (RemoveTeam) teamMode() byte         { return 1 }
func (UpdateTeamInfo) teamMode() byte     { return 2 }
func (AddTeamEntities) teamMode() byte    { return 3 }
func (RemoveTeamEntities) teamMode() byte { return 4 }

func writeTeamAction(w io.Writer, v TeamAction) (err error) {
	if v == nil {
		return fmt.Errorf("team action is required")
	}
	if err = WriteByte(w, v.teamMode()); err != nil {
		return
	}

	switch a := v.(type) {
	case CreateTeam:
		if err = writeTeamInfo(w, a.Info); err != nil {
			return
		}
		return WritePrefixedArray(w, a.Entities, writeTeamEntity)
	case RemoveTeam:
		return nil
	case UpdateTeamInfo:
		return writeTeamInfo(w, a.Info)
	case AddTeamEntities:
		return WritePrefixedArray(w, a.Entities, writeTeamEntity)
	case RemoveTeamEntities:
		return WritePrefixedArray(w, a.Entities, writeTeamEntity)
	}
	return fmt.Errorf("unsupported team action %T", v)
}

func readTeamAction(r *FrameReader) (v TeamAction, err error) {
	mode, err := r.ReadByte()
	if err != nil {
		return
	}

	switch mode {
	case 0:
		var a CreateTeam
		if a.Info, err = readTeamInfo(r); err != nil {
			return
		}
		if a.Entities, err = ReadPrefixedArray(r, readTeamEntity); err != nil {
			return
		}
		return a, nil
	case 1:
		return RemoveTeam{}, nil
	case 2:
		var a UpdateTeamInfo
		if a.Info, err = readTeamInfo(r); err != nil {
			return
		}
		return a, nil
	case 3:
		var a AddTeamEntities
		if a.Entities, err = ReadPrefixedArray(r, readTeamEntity); err != nil {
			return
		}
		return a, nil
	case 4:
		var a RemoveTeamEntities
		if a.Entities, err = ReadPrefixedArray(r, readTeamEntity); err != nil {
			return
		}
		return a, nil
	}
	return nil, unknown("team action", int32(mode))
}

// @gen:r,w,cb=0x58
type UpdateTeams struct {
	TeamName string     `field:"BoundedString" args:"16"`
	Action   TeamAction `write:"writeTeamAction" read:"readTeamAction"`
}

// ScoreAction sets or clears the score of an entity.
type ScoreAction interface {
	scoreAction() int32
}

type SetScore struct {
	Objective string
	Value     int32
}

type ResetScore struct {
	Objective string
}

func (SetScore) scoreAction() int32   { return 0 }
func (ResetScore) scoreAction() int32 { return 1 }

func writeScoreAction(w io.Writer, v ScoreAction) (err error) {
	if v == nil {
		return fmt.Errorf("score action is required")
	}
	if err = WriteVarInt(w, v.scoreAction()); err != nil {
		return
	}

	switch a := v.(type) {
	case SetScore:
		if err = WriteBoundedString(w, a.Objective, 16); err != nil {
			return
		}
		return WriteVarInt(w, a.Value)
	case ResetScore:
		return WriteBoundedString(w, a.Objective, 16)
	}
	return fmt.Errorf("unsupported score action %T", v)
}

func readScoreAction(r *FrameReader) (v ScoreAction, err error) {
	action, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch action {
	case 0:
		var a SetScore
		if a.Objective, err = ReadBoundedString(r, 16); err != nil {
			return
		}
		if a.Value, err = ReadVarInt(r); err != nil {
			return
		}
		return a, nil
	case 1:
		var a ResetScore
		if a.Objective, err = ReadBoundedString(r, 16); err != nil {
			return
		}
		return a, nil
	}
	return nil, unknown("score action", action)
}

// @gen:r,w,cb=0x59
type UpdateScore struct {
	EntityName string      `field:"BoundedString" args:"TeamEntityMax"`
	Action     ScoreAction `write:"writeScoreAction" read:"readScoreAction"`
}
