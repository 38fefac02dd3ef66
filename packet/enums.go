package packet

// Symbolic enumerations used by packet fields and the mappers binding them
// to wire ids. Ids follow the position of each symbol unless a table is
// given.

type Hand string

const (
	MainHand Hand = "main_hand"
	OffHand  Hand = "off_hand"
)

var Hands = NewMapper("hand", MainHand, OffHand)

// Arm is the client's dominant arm setting.
type Arm string

const (
	LeftArm  Arm = "left"
	RightArm Arm = "right"
)

var Arms = NewMapper("arm", LeftArm, RightArm)

type BlockFace string

const (
	Down  BlockFace = "down"
	Up    BlockFace = "up"
	North BlockFace = "north"
	South BlockFace = "south"
	West  BlockFace = "west"
	East  BlockFace = "east"
)

var BlockFaces = NewMapper("block face", Down, Up, North, South, West, East)

type GameMode string

const (
	Survival  GameMode = "survival"
	Creative  GameMode = "creative"
	Adventure GameMode = "adventure"
	Spectator GameMode = "spectator"
)

var GameModes = NewMapper("game mode", Survival, Creative, Adventure, Spectator)

type Difficulty string

const (
	Peaceful Difficulty = "peaceful"
	Easy     Difficulty = "easy"
	Normal   Difficulty = "normal"
	Hard     Difficulty = "hard"
)

var Difficulties = NewMapper("difficulty", Peaceful, Easy, Normal, Hard)

type SoundSource string

const (
	SoundMaster  SoundSource = "master"
	SoundMusic   SoundSource = "music"
	SoundRecord  SoundSource = "record"
	SoundWeather SoundSource = "weather"
	SoundBlock   SoundSource = "block"
	SoundHostile SoundSource = "hostile"
	SoundNeutral SoundSource = "neutral"
	SoundPlayer  SoundSource = "player"
	SoundAmbient SoundSource = "ambient"
	SoundVoice   SoundSource = "voice"
)

var SoundSources = NewMapper("sound source",
	SoundMaster, SoundMusic, SoundRecord, SoundWeather, SoundBlock,
	SoundHostile, SoundNeutral, SoundPlayer, SoundAmbient, SoundVoice,
)

type EntityAnimation string

const (
	SwingMainArm        EntityAnimation = "swing_main_arm"
	TakeDamage          EntityAnimation = "take_damage"
	LeaveBed            EntityAnimation = "leave_bed"
	SwingOffhand        EntityAnimation = "swing_offhand"
	CriticalEffect      EntityAnimation = "critical_effect"
	MagicCriticalEffect EntityAnimation = "magic_critical_effect"
)

var EntityAnimations = NewMapper("entity animation",
	SwingMainArm, TakeDamage, LeaveBed, SwingOffhand, CriticalEffect, MagicCriticalEffect,
)

type GameEventType string

const (
	NoRespawnBlockAvailable GameEventType = "no_respawn_block_available"
	StartRaining            GameEventType = "start_raining"
	StopRaining             GameEventType = "stop_raining"
	ChangeGameMode          GameEventType = "change_game_mode"
	WinGame                 GameEventType = "win_game"
	DemoEvent               GameEventType = "demo_event"
	ArrowHitPlayer          GameEventType = "arrow_hit_player"
	RainLevelChange         GameEventType = "rain_level_change"
	ThunderLevelChange      GameEventType = "thunder_level_change"
	PufferFishSting         GameEventType = "puffer_fish_sting"
	GuardianElderEffect     GameEventType = "guardian_elder_effect"
	ImmediateRespawn        GameEventType = "immediate_respawn"
)

var GameEventTypes = NewMapper("game event",
	NoRespawnBlockAvailable, StartRaining, StopRaining, ChangeGameMode,
	WinGame, DemoEvent, ArrowHitPlayer, RainLevelChange, ThunderLevelChange,
	PufferFishSting, GuardianElderEffect, ImmediateRespawn,
)

type ChatMode string

const (
	ChatEnabled      ChatMode = "enabled"
	ChatCommandsOnly ChatMode = "commands_only"
	ChatHidden       ChatMode = "hidden"
)

var ChatModes = NewMapper("chat mode", ChatEnabled, ChatCommandsOnly, ChatHidden)

type ClientCommandAction string

const (
	PerformRespawn ClientCommandAction = "perform_respawn"
	RequestStats   ClientCommandAction = "request_stats"
)

var ClientCommandActions = NewMapper("client command", PerformRespawn, RequestStats)

type PlayerActionStatus string

const (
	StartDestroyBlock   PlayerActionStatus = "start_destroy_block"
	AbortDestroyBlock   PlayerActionStatus = "abort_destroy_block"
	StopDestroyBlock    PlayerActionStatus = "stop_destroy_block"
	DropAllItems        PlayerActionStatus = "drop_all_items"
	DropItem            PlayerActionStatus = "drop_item"
	ReleaseUseItem      PlayerActionStatus = "release_use_item"
	SwapItemWithOffhand PlayerActionStatus = "swap_item_with_offhand"
)

var PlayerActionStatuses = NewMapper("player action",
	StartDestroyBlock, AbortDestroyBlock, StopDestroyBlock, DropAllItems,
	DropItem, ReleaseUseItem, SwapItemWithOffhand,
)

type PlayerCommandAction string

const (
	PressShiftKey   PlayerCommandAction = "press_shift_key"
	ReleaseShiftKey PlayerCommandAction = "release_shift_key"
	StopSleeping    PlayerCommandAction = "stop_sleeping"
	StartSprinting  PlayerCommandAction = "start_sprinting"
	StopSprinting   PlayerCommandAction = "stop_sprinting"
	StartRidingJump PlayerCommandAction = "start_riding_jump"
	StopRidingJump  PlayerCommandAction = "stop_riding_jump"
	OpenInventory   PlayerCommandAction = "open_inventory"
	StartFallFlying PlayerCommandAction = "start_fall_flying"
)

var PlayerCommandActions = NewMapper("player command",
	PressShiftKey, ReleaseShiftKey, StopSleeping, StartSprinting, StopSprinting,
	StartRidingJump, StopRidingJump, OpenInventory, StartFallFlying,
)

type ResourcePackStatus string

const (
	ResourcePackLoaded   ResourcePackStatus = "successfully_loaded"
	ResourcePackDeclined ResourcePackStatus = "declined"
	ResourcePackFailed   ResourcePackStatus = "failed_download"
	ResourcePackAccepted ResourcePackStatus = "accepted"
)

var ResourcePackStatuses = NewMapper("resource pack status",
	ResourcePackLoaded, ResourcePackDeclined, ResourcePackFailed, ResourcePackAccepted,
)

type RecipeBookType string

const (
	CraftingBook     RecipeBookType = "crafting"
	FurnaceBook      RecipeBookType = "furnace"
	BlastFurnaceBook RecipeBookType = "blast_furnace"
	SmokerBook       RecipeBookType = "smoker"
)

var RecipeBookTypes = NewMapper("recipe book", CraftingBook, FurnaceBook, BlastFurnaceBook, SmokerBook)

type BossBarColor string

const (
	BossBarPink   BossBarColor = "pink"
	BossBarBlue   BossBarColor = "blue"
	BossBarRed    BossBarColor = "red"
	BossBarGreen  BossBarColor = "green"
	BossBarYellow BossBarColor = "yellow"
	BossBarPurple BossBarColor = "purple"
	BossBarWhite  BossBarColor = "white"
)

var BossBarColors = NewMapper("boss bar color",
	BossBarPink, BossBarBlue, BossBarRed, BossBarGreen, BossBarYellow, BossBarPurple, BossBarWhite,
)

type BossBarDivision string

const (
	BossBarProgress  BossBarDivision = "progress"
	BossBarNotched6  BossBarDivision = "notched_6"
	BossBarNotched10 BossBarDivision = "notched_10"
	BossBarNotched12 BossBarDivision = "notched_12"
	BossBarNotched20 BossBarDivision = "notched_20"
)

var BossBarDivisions = NewMapper("boss bar division",
	BossBarProgress, BossBarNotched6, BossBarNotched10, BossBarNotched12, BossBarNotched20,
)

type ObjectiveRenderType string

const (
	RenderInteger ObjectiveRenderType = "integer"
	RenderHearts  ObjectiveRenderType = "hearts"
)

var ObjectiveRenderTypes = NewMapper("objective render type", RenderInteger, RenderHearts)

// ChatFormatting is a legacy text formatting code, used for team colors.
type ChatFormatting string

var ChatFormattings = NewMapper[ChatFormatting]("chat formatting",
	"black", "dark_blue", "dark_green", "dark_aqua", "dark_red", "dark_purple",
	"gold", "gray", "dark_gray", "blue", "green", "aqua", "red", "light_purple",
	"yellow", "white", "obfuscated", "bold", "strikethrough", "underline",
	"italic", "reset",
)

type EquipmentSlot string

const (
	SlotMainHand EquipmentSlot = "main_hand"
	SlotOffHand  EquipmentSlot = "off_hand"
	SlotFeet     EquipmentSlot = "feet"
	SlotLegs     EquipmentSlot = "legs"
	SlotChest    EquipmentSlot = "chest"
	SlotHead     EquipmentSlot = "head"
)

var EquipmentSlots = NewMapper("equipment slot",
	SlotMainHand, SlotOffHand, SlotFeet, SlotLegs, SlotChest, SlotHead,
)

type Pose string

var Poses = NewMapper[Pose]("pose",
	"standing", "fall_flying", "sleeping", "swimming", "spin_attack",
	"crouching", "long_jumping", "dying", "croaking", "using_tongue",
	"roaring", "sniffing", "emerging", "digging",
)

type StatisticCategory string

const (
	StatMined    StatisticCategory = "mined"
	StatCrafted  StatisticCategory = "crafted"
	StatUsed     StatisticCategory = "used"
	StatBroken   StatisticCategory = "broken"
	StatPickedUp StatisticCategory = "picked_up"
	StatDropped  StatisticCategory = "dropped"
	StatKilled   StatisticCategory = "killed"
	StatKilledBy StatisticCategory = "killed_by"
	StatCustom   StatisticCategory = "custom"
)

var StatisticCategories = NewMapper("statistic category",
	StatMined, StatCrafted, StatUsed, StatBroken, StatPickedUp,
	StatDropped, StatKilled, StatKilledBy, StatCustom,
)

type AdvancementFrame string

var AdvancementFrames = NewMapper[AdvancementFrame]("advancement frame", "task", "challenge", "goal")

type CommandBlockMode string

var CommandBlockModes = NewMapper[CommandBlockMode]("command block mode", "sequence", "auto", "redstone")

type StructureBlockAction string

var StructureBlockActions = NewMapper[StructureBlockAction]("structure block action",
	"update_data", "save_structure", "load_structure", "detect_size",
)

type StructureBlockMode string

var StructureBlockModes = NewMapper[StructureBlockMode]("structure block mode", "save", "load", "corner", "data")

type Mirror string

var Mirrors = NewMapper[Mirror]("mirror", "none", "left_right", "front_back")

type Rotation string

var Rotations = NewMapper[Rotation]("rotation", "none", "clockwise_90", "clockwise_180", "counterclockwise_90")

type ClickMode string

var ClickModes = NewMapper[ClickMode]("click mode",
	"pickup", "quick_move", "swap", "clone", "throw", "quick_craft", "pickup_all",
)

type ChatSuggestionAction string

var ChatSuggestionActions = NewMapper[ChatSuggestionAction]("chat suggestion action", "add", "remove", "set")

type AnchorPoint string

const (
	AnchorFeet AnchorPoint = "feet"
	AnchorEyes AnchorPoint = "eyes"
)

var AnchorPoints = NewMapper("anchor point", AnchorFeet, AnchorEyes)

type AttributeOperation string

var AttributeOperations = NewMapper[AttributeOperation]("attribute operation",
	"addition", "multiply_base", "multiply_total",
)

type VillagerType string

var VillagerTypes = NewMapper[VillagerType]("villager type",
	"desert", "jungle", "plains", "savanna", "snow", "swamp", "taiga",
)

type VillagerProfession string

var VillagerProfessions = NewMapper[VillagerProfession]("villager profession",
	"none", "armorer", "butcher", "cartographer", "cleric", "farmer",
	"fisherman", "fletcher", "leatherworker", "librarian", "mason",
	"nitwit", "shepherd", "toolsmith", "weaponsmith",
)

type CatVariant string

var CatVariants = NewMapper[CatVariant]("cat variant",
	"tabby", "black", "red", "siamese", "british_shorthair", "calico",
	"persian", "ragdoll", "white", "jellie", "all_black",
)

type FrogVariant string

var FrogVariants = NewMapper[FrogVariant]("frog variant", "temperate", "warm", "cold")

// HandshakeIntent is the next state requested by a Handshake.
type HandshakeIntent string

const (
	IntentStatus HandshakeIntent = "status"
	IntentLogin  HandshakeIntent = "login"
)

var HandshakeIntents = NewMapperFromTable("handshake intent", map[HandshakeIntent]int32{
	IntentStatus: 1,
	IntentLogin:  2,
})
