package packet

import (
	"fmt"
	"io"
)

// Statistic names one counter. The id space of each arm follows its
// category: blocks for mined, entity types for killed and killed_by, custom
// statistic ids for custom and items for the rest.
type Statistic interface {
	statisticCategory() StatisticCategory
}

type MinedStatistic struct{ Block int32 }
type CraftedStatistic struct{ Item int32 }
type UsedStatistic struct{ Item int32 }
type BrokenStatistic struct{ Item int32 }
type PickedUpStatistic struct{ Item int32 }
type DroppedStatistic struct{ Item int32 }
type KilledStatistic struct{ Entity int32 }
type KilledByStatistic struct{ Entity int32 }
type CustomStatistic struct{ Stat int32 }

func (MinedStatistic) statisticCategory() StatisticCategory    { return StatMined }
func (CraftedStatistic) statisticCategory() StatisticCategory  { return StatCrafted }
func (UsedStatistic) statisticCategory() StatisticCategory     { return StatUsed }
func (BrokenStatistic) statisticCategory() StatisticCategory   { return StatBroken }
func (PickedUpStatistic) statisticCategory() StatisticCategory { return StatPickedUp }
func (DroppedStatistic) statisticCategory() StatisticCategory  { return StatDropped }
func (KilledStatistic) statisticCategory() StatisticCategory   { return StatKilled }
func (KilledByStatistic) statisticCategory() StatisticCategory { return StatKilledBy }
func (CustomStatistic) statisticCategory() StatisticCategory   { return StatCustom }

func statisticID(v Statistic) (int32, error) {
	switch s := v.(type) {
	case MinedStatistic:
		return s.Block, nil
	case CraftedStatistic:
		return s.Item, nil
	case UsedStatistic:
		return s.Item, nil
	case BrokenStatistic:
		return s.Item, nil
	case PickedUpStatistic:
		return s.Item, nil
	case DroppedStatistic:
		return s.Item, nil
	case KilledStatistic:
		return s.Entity, nil
	case KilledByStatistic:
		return s.Entity, nil
	case CustomStatistic:
		return s.Stat, nil
	}
	return 0, fmt.Errorf("unsupported statistic %T", v)
}

func WriteStatistic(w io.Writer, v Statistic) (err error) {
	if v == nil {
		return fmt.Errorf("statistic is required")
	}
	id, err := statisticID(v)
	if err != nil {
		return
	}
	if err = WriteVarIntEnum(w, v.statisticCategory(), StatisticCategories); err != nil {
		return
	}
	return WriteVarInt(w, id)
}

func ReadStatistic(r *FrameReader) (v Statistic, err error) {
	category, err := ReadVarIntEnum(r, StatisticCategories)
	if err != nil {
		return
	}
	id, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch category {
	case StatMined:
		return MinedStatistic{id}, nil
	case StatCrafted:
		return CraftedStatistic{id}, nil
	case StatUsed:
		return UsedStatistic{id}, nil
	case StatBroken:
		return BrokenStatistic{id}, nil
	case StatPickedUp:
		return PickedUpStatistic{id}, nil
	case StatDropped:
		return DroppedStatistic{id}, nil
	case StatKilled:
		return KilledStatistic{id}, nil
	case StatKilledBy:
		return KilledByStatistic{id}, nil
	case StatCustom:
		return CustomStatistic{id}, nil
	}
	return nil, unknown(StatisticCategories.Name(), category)
}

type StatisticValue struct {
	Statistic Statistic
	Value     int32
}

func writeStatisticValue(w io.Writer, v StatisticValue) (err error) {
	if err = WriteStatistic(w, v.Statistic); err != nil {
		return
	}
	return WriteVarInt(w, v.Value)
}

func readStatisticValue(r *FrameReader) (v StatisticValue, err error) {
	if v.Statistic, err = ReadStatistic(r); err != nil {
		return
	}
	v.Value, err = ReadVarInt(r)
	return
}

// @gen:r,w,cb=0x04
type AwardStatistics struct {
	Statistics []StatisticValue `field:"PrefixedArray" write:"writeStatisticValue" read:"readStatisticValue"`
}

// @gen:r,w,cb=0x41
type SelectAdvancementsTab struct {
	Tab Optional[Identifier] `field:"Optional" inner:"Identifier"`
}

// Advancement display flags.
const (
	AdvancementBackground byte = 0x01
	AdvancementShowToast  byte = 0x02
	AdvancementHidden     byte = 0x04
)

type AdvancementDisplay struct {
	Title       Chat
	Description Chat
	Icon        Slot
	Frame       AdvancementFrame
	// Flags must not carry AdvancementBackground; it is derived from
	// Background on the wire.
	Flags      int32
	Background Optional[Identifier]
	X, Y       float32
}

func writeAdvancementDisplay(w io.Writer, v AdvancementDisplay) (err error) {
	if err = WriteChat(w, v.Title); err != nil {
		return
	}
	if err = WriteChat(w, v.Description); err != nil {
		return
	}
	if err = WriteSlot(w, v.Icon); err != nil {
		return
	}
	if err = WriteVarIntEnum(w, v.Frame, AdvancementFrames); err != nil {
		return
	}

	flags := v.Flags &^ int32(AdvancementBackground)
	if v.Background.Exists {
		flags |= int32(AdvancementBackground)
	}
	if err = WriteInt(w, flags); err != nil {
		return
	}
	if v.Background.Exists {
		if err = WriteIdentifier(w, v.Background.Item); err != nil {
			return
		}
	}

	if err = WriteFloat(w, v.X); err != nil {
		return
	}
	return WriteFloat(w, v.Y)
}

func readAdvancementDisplay(r *FrameReader) (v AdvancementDisplay, err error) {
	if v.Title, err = ReadChat(r); err != nil {
		return
	}
	if v.Description, err = ReadChat(r); err != nil {
		return
	}
	if v.Icon, err = ReadSlot(r); err != nil {
		return
	}
	if v.Frame, err = ReadVarIntEnum(r, AdvancementFrames); err != nil {
		return
	}

	var flags int32
	if flags, err = ReadInt(r); err != nil {
		return
	}
	v.Flags = flags &^ int32(AdvancementBackground)
	if flags&int32(AdvancementBackground) != 0 {
		var bg Identifier
		if bg, err = ReadIdentifier(r); err != nil {
			return
		}
		v.Background = Some(bg)
	}

	if v.X, err = ReadFloat(r); err != nil {
		return
	}
	v.Y, err = ReadFloat(r)
	return
}

type Advancement struct {
	Parent   Optional[Identifier]
	Display  Optional[AdvancementDisplay]
	Criteria []Identifier
	// Requirements is a conjunction of disjunctions of criteria names.
	Requirements [][]string
}

func writeRequirement(w io.Writer, v []string) error {
	return WritePrefixedArray(w, v, WriteString)
}

func readRequirement(r *FrameReader) ([]string, error) {
	return ReadPrefixedArray(r, ReadString)
}

func writeAdvancement(w io.Writer, v Advancement) (err error) {
	if err = WriteOptional(w, v.Parent, WriteIdentifier); err != nil {
		return
	}
	if err = WriteOptional(w, v.Display, writeAdvancementDisplay); err != nil {
		return
	}
	if err = WritePrefixedArray(w, v.Criteria, WriteIdentifier); err != nil {
		return
	}
	return WritePrefixedArray(w, v.Requirements, writeRequirement)
}

func readAdvancement(r *FrameReader) (v Advancement, err error) {
	if v.Parent, err = ReadOptional(r, ReadIdentifier); err != nil {
		return
	}
	if v.Display, err = ReadOptional(r, readAdvancementDisplay); err != nil {
		return
	}
	if v.Criteria, err = ReadPrefixedArray(r, ReadIdentifier); err != nil {
		return
	}
	v.Requirements, err = ReadPrefixedArray(r, readRequirement)
	return
}

type AdvancementMapping struct {
	Key         Identifier
	Advancement Advancement
}

func writeAdvancementMapping(w io.Writer, v AdvancementMapping) (err error) {
	if err = WriteIdentifier(w, v.Key); err != nil {
		return
	}
	return writeAdvancement(w, v.Advancement)
}

func readAdvancementMapping(r *FrameReader) (v AdvancementMapping, err error) {
	if v.Key, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Advancement, err = readAdvancement(r)
	return
}

// CriterionProgress holds the epoch milliseconds a criterion was achieved
// at, absent while it is not.
type CriterionProgress struct {
	Criterion  Identifier
	AchievedAt Optional[int64]
}

func writeCriterionProgress(w io.Writer, v CriterionProgress) (err error) {
	if err = WriteIdentifier(w, v.Criterion); err != nil {
		return
	}
	return WriteOptional(w, v.AchievedAt, WriteLong)
}

func readCriterionProgress(r *FrameReader) (v CriterionProgress, err error) {
	if v.Criterion, err = ReadIdentifier(r); err != nil {
		return
	}
	v.AchievedAt, err = ReadOptional(r, ReadLong)
	return
}

type AdvancementProgress struct {
	Advancement Identifier
	Criteria    []CriterionProgress
}

func writeAdvancementProgress(w io.Writer, v AdvancementProgress) (err error) {
	if err = WriteIdentifier(w, v.Advancement); err != nil {
		return
	}
	return WritePrefixedArray(w, v.Criteria, writeCriterionProgress)
}

func readAdvancementProgress(r *FrameReader) (v AdvancementProgress, err error) {
	if v.Advancement, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Criteria, err = ReadPrefixedArray(r, readCriterionProgress)
	return
}

// @gen:r,w,cb=0x67
type UpdateAdvancements struct {
	Reset    bool                  `field:"Boolean"`
	Added    []AdvancementMapping  `field:"PrefixedArray" write:"writeAdvancementMapping" read:"readAdvancementMapping"`
	Removed  []Identifier          `field:"PrefixedArray" inner:"Identifier"`
	Progress []AdvancementProgress `field:"PrefixedArray" write:"writeAdvancementProgress" read:"readAdvancementProgress"`
}

// Tag is a named set of registry entry ids.
type Tag struct {
	Name    Identifier
	Entries []int32
}

func writeTag(w io.Writer, v Tag) (err error) {
	if err = WriteIdentifier(w, v.Name); err != nil {
		return
	}
	return WritePrefixedArray(w, v.Entries, WriteVarInt)
}

func readTag(r *FrameReader) (v Tag, err error) {
	if v.Name, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Entries, err = ReadPrefixedArray(r, ReadVarInt)
	return
}

type RegistryTags struct {
	Registry Identifier
	Tags     []Tag
}

func writeRegistryTags(w io.Writer, v RegistryTags) (err error) {
	if err = WriteIdentifier(w, v.Registry); err != nil {
		return
	}
	return WritePrefixedArray(w, v.Tags, writeTag)
}

func readRegistryTags(r *FrameReader) (v RegistryTags, err error) {
	if v.Registry, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Tags, err = ReadPrefixedArray(r, readTag)
	return
}

// @gen:r,w,cb=0x6B
type UpdateTags struct {
	Registries []RegistryTags `field:"PrefixedArray" write:"writeRegistryTags" read:"readRegistryTags"`
}

// SeenAdvancementsAction reports the advancement screen state.
type SeenAdvancementsAction interface {
	seenAdvancementsAction() int32
}

type OpenedTab struct {
	Tab Identifier
}

type ClosedScreen struct{}

func (OpenedTab) seenAdvancementsAction() int32    { return 0 }
func (ClosedScreen) seenAdvancementsAction() int32 { return 1 }

func writeSeenAdvancementsAction(w io.Writer, v SeenAdvancementsAction) (err error) {
	if v == nil {
		return fmt.Errorf("seen advancements action is required")
	}
	if err = WriteVarInt(w, v.seenAdvancementsAction()); err != nil {
		return
	}

	switch a := v.(type) {
	case OpenedTab:
		return WriteIdentifier(w, a.Tab)
	case ClosedScreen:
		return nil
	}
	return fmt.Errorf("unsupported seen advancements action %T", v)
}

func readSeenAdvancementsAction(r *FrameReader) (v SeenAdvancementsAction, err error) {
	action, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch action {
	case 0:
		var a OpenedTab
		if a.Tab, err = ReadIdentifier(r); err != nil {
			return
		}
		return a, nil
	case 1:
		return ClosedScreen{}, nil
	}
	return nil, unknown("seen advancements action", action)
}

// @gen:r,w,sb=0x25
type SeenAdvancements struct {
	Action SeenAdvancementsAction `write:"writeSeenAdvancementsAction" read:"readSeenAdvancementsAction"`
}
