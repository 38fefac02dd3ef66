package packet

import (
	"fmt"
	"io"
)

// @gen:r,w,cb=0x10
type CloseContainer struct {
	WindowID byte `field:"Byte"`
}

// @gen:r,w,cb=0x11
type SetContainerContent struct {
	WindowID    byte   `field:"Byte"`
	StateID     int32  `field:"VarInt"`
	Slots       []Slot `field:"PrefixedArray" inner:"Slot"`
	CarriedItem Slot   `field:"Slot"`
}

// @gen:r,w,cb=0x12
type SetContainerProperty struct {
	WindowID byte  `field:"Byte"`
	Property int16 `field:"Short"`
	Value    int16 `field:"Short"`
}

// @gen:r,w,cb=0x13
type SetContainerSlot struct {
	WindowID int8  `field:"SignedByte"`
	StateID  int32 `field:"VarInt"`
	Slot     int16 `field:"Short"`
	Item     Slot  `field:"Slot"`
}

// @gen:r,w,cb=0x14
type SetCooldown struct {
	ItemID        int32 `field:"VarInt"`
	CooldownTicks int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x1E
type OpenHorseScreen struct {
	WindowID  byte  `field:"Byte"`
	SlotCount int32 `field:"VarInt"`
	EntityID  int32 `field:"Int"`
}

// Trade is one offer of a merchant.
type Trade struct {
	Input1          Slot
	Output          Slot
	Input2          Optional[Slot]
	Disabled        bool
	Uses            int32
	MaxUses         int32
	XP              int32
	SpecialPrice    int32
	PriceMultiplier float32
	Demand          int32
}

func writeTrade(w io.Writer, v Trade) (err error) {
	if err = WriteSlot(w, v.Input1); err != nil {
		return
	}
	if err = WriteSlot(w, v.Output); err != nil {
		return
	}
	if err = WriteOptional(w, v.Input2, WriteSlot); err != nil {
		return
	}
	if err = WriteBoolean(w, v.Disabled); err != nil {
		return
	}
	for _, n := range []int32{v.Uses, v.MaxUses, v.XP, v.SpecialPrice} {
		if err = WriteInt(w, n); err != nil {
			return
		}
	}
	if err = WriteFloat(w, v.PriceMultiplier); err != nil {
		return
	}
	return WriteInt(w, v.Demand)
}

func readTrade(r *FrameReader) (v Trade, err error) {
	if v.Input1, err = ReadSlot(r); err != nil {
		return
	}
	if v.Output, err = ReadSlot(r); err != nil {
		return
	}
	if v.Input2, err = ReadOptional(r, ReadSlot); err != nil {
		return
	}
	if v.Disabled, err = ReadBoolean(r); err != nil {
		return
	}
	for _, n := range []*int32{&v.Uses, &v.MaxUses, &v.XP, &v.SpecialPrice} {
		if *n, err = ReadInt(r); err != nil {
			return
		}
	}
	if v.PriceMultiplier, err = ReadFloat(r); err != nil {
		return
	}
	v.Demand, err = ReadInt(r)
	return
}

// writeTrades writes the offers behind a one byte count.
func writeTrades(w io.Writer, v []Trade) (err error) {
	if len(v) > 0xFF {
		return fmt.Errorf("%d trades exceed the limit of 255", len(v))
	}
	if err = WriteByte(w, byte(len(v))); err != nil {
		return
	}
	for _, t := range v {
		if err = writeTrade(w, t); err != nil {
			return
		}
	}
	return
}

func readTrades(r *FrameReader) (v []Trade, err error) {
	n, err := r.ReadByte()
	if err != nil {
		return
	}
	return ReadFixedArray(r, readTrade, int(n))
}

// @gen:r,w,cb=0x27
type MerchantOffers struct {
	WindowID        int32   `field:"VarInt"`
	Trades          []Trade `write:"writeTrades" read:"readTrades"`
	VillagerLevel   int32   `field:"VarInt"`
	Experience      int32   `field:"VarInt"`
	RegularVillager bool    `field:"Boolean"`
	CanRestock      bool    `field:"Boolean"`
}

// @gen:r,w,cb=0x2C
type OpenBook struct {
	Hand Hand `field:"VarIntEnum" args:"Hands"`
}

// @gen:r,w,cb=0x2D
type OpenScreen struct {
	WindowID   int32 `field:"VarInt"`
	WindowType int32 `field:"VarInt"`
	Title      Chat  `field:"Chat"`
}

// @gen:r,w,cb=0x30
type PlaceGhostRecipe struct {
	WindowID int8       `field:"SignedByte"`
	Recipe   Identifier `field:"Identifier"`
}

type RecipeBookAction string

const (
	RecipeBookInitAction   RecipeBookAction = "init"
	RecipeBookAddAction    RecipeBookAction = "add"
	RecipeBookRemoveAction RecipeBookAction = "remove"
)

var RecipeBookActions = NewMapper("recipe book action", RecipeBookInitAction, RecipeBookAddAction, RecipeBookRemoveAction)

// RecipeBookState is the open and filtering state of one recipe book.
type RecipeBookState struct {
	Open      bool
	Filtering bool
}

type RecipeBookSettings struct {
	Crafting     RecipeBookState
	Furnace      RecipeBookState
	BlastFurnace RecipeBookState
	Smoker       RecipeBookState
}

func (s *RecipeBookSettings) books() []*RecipeBookState {
	return []*RecipeBookState{&s.Crafting, &s.Furnace, &s.BlastFurnace, &s.Smoker}
}

// RecipeBookUpdate is the change applied to the unlocked recipes.
type RecipeBookUpdate interface {
	RecipeBookAction() RecipeBookAction
}

// RecipeBookInit replaces the unlocked recipes; Highlighted are shown as
// new.
type RecipeBookInit struct {
	Recipes     []Identifier
	Highlighted []Identifier
}

type RecipeBookAdd struct {
	Recipes []Identifier
}

type RecipeBookRemove struct {
	Recipes []Identifier
}

func (RecipeBookInit) RecipeBookAction() RecipeBookAction   { return RecipeBookInitAction }
func (RecipeBookAdd) RecipeBookAction() RecipeBookAction    { return RecipeBookAddAction }
func (RecipeBookRemove) RecipeBookAction() RecipeBookAction { return RecipeBookRemoveAction }

// UpdateRecipeBook carries the action before the book settings and the
// action's recipe lists after them.
//
// @gen:cb=0x3A
type UpdateRecipeBook struct {
	Update   RecipeBookUpdate
	Settings RecipeBookSettings
}

func (p UpdateRecipeBook) Encode(w io.Writer) (err error) {
	if p.Update == nil {
		return fmt.Errorf("recipe book update is required")
	}
	if err = WriteVarIntEnum(w, p.Update.RecipeBookAction(), RecipeBookActions); err != nil {
		return
	}
	for _, b := range p.Settings.books() {
		if err = WriteBoolean(w, b.Open); err != nil {
			return
		}
		if err = WriteBoolean(w, b.Filtering); err != nil {
			return
		}
	}

	switch u := p.Update.(type) {
	case RecipeBookInit:
		if err = WritePrefixedArray(w, u.Recipes, WriteIdentifier); err != nil {
			return
		}
		return WritePrefixedArray(w, u.Highlighted, WriteIdentifier)
	case RecipeBookAdd:
		return WritePrefixedArray(w, u.Recipes, WriteIdentifier)
	case RecipeBookRemove:
		return WritePrefixedArray(w, u.Recipes, WriteIdentifier)
	}
	return fmt.Errorf("unsupported recipe book update %T", p.Update)
}

func (p *UpdateRecipeBook) Decode(r *FrameReader) (err error) {
	action, err := ReadVarIntEnum(r, RecipeBookActions)
	if err != nil {
		return
	}
	for _, b := range p.Settings.books() {
		if b.Open, err = ReadBoolean(r); err != nil {
			return
		}
		if b.Filtering, err = ReadBoolean(r); err != nil {
			return
		}
	}

	recipes, err := ReadPrefixedArray(r, ReadIdentifier)
	if err != nil {
		return
	}
	switch action {
	case RecipeBookInitAction:
		u := RecipeBookInit{Recipes: recipes}
		if u.Highlighted, err = ReadPrefixedArray(r, ReadIdentifier); err != nil {
			return
		}
		p.Update = u
	case RecipeBookAddAction:
		p.Update = RecipeBookAdd{Recipes: recipes}
	case RecipeBookRemoveAction:
		p.Update = RecipeBookRemove{Recipes: recipes}
	}
	return nil
}

type RecipeSerializer Identifier

const (
	RecipeShapeless       RecipeSerializer = "minecraft:crafting_shapeless"
	RecipeShaped          RecipeSerializer = "minecraft:crafting_shaped"
	RecipeSmelting        RecipeSerializer = "minecraft:smelting"
	RecipeBlasting        RecipeSerializer = "minecraft:blasting"
	RecipeSmoking         RecipeSerializer = "minecraft:smoking"
	RecipeCampfireCooking RecipeSerializer = "minecraft:campfire_cooking"
	RecipeStonecutting    RecipeSerializer = "minecraft:stonecutting"
	RecipeSmithing        RecipeSerializer = "minecraft:smithing"
)

// RecipeSerializers lists every recipe type. Recipes name their type on the
// wire, so the ids only order the table.
var RecipeSerializers = NewMapper[RecipeSerializer]("recipe serializer",
	RecipeShapeless, RecipeShaped,
	"minecraft:crafting_special_armordye", "minecraft:crafting_special_bookcloning",
	"minecraft:crafting_special_mapcloning", "minecraft:crafting_special_mapextending",
	"minecraft:crafting_special_firework_rocket", "minecraft:crafting_special_firework_star",
	"minecraft:crafting_special_firework_star_fade", "minecraft:crafting_special_repairitem",
	"minecraft:crafting_special_tippedarrow", "minecraft:crafting_special_bannerduplicate",
	"minecraft:crafting_special_banneraddpattern", "minecraft:crafting_special_shielddecoration",
	"minecraft:crafting_special_shulkerboxcoloring", "minecraft:crafting_special_suspiciousstew",
	RecipeSmelting, RecipeBlasting, RecipeSmoking, RecipeCampfireCooking,
	RecipeStonecutting, RecipeSmithing,
)

// RecipeData is the type-specific body of a recipe.
type RecipeData interface {
	RecipeSerializer() RecipeSerializer
}

type ShapelessRecipe struct {
	Group       string
	Ingredients []Ingredient
	Result      Slot
}

// ShapedRecipe holds Width*Height ingredients in row-major order.
type ShapedRecipe struct {
	Width, Height int32
	Group         string
	Ingredients   []Ingredient
	Result        Slot
}

// SpecialRecipe is a built-in crafting recipe with no data.
type SpecialRecipe struct {
	Serializer RecipeSerializer
}

// CookingRecipe is a smelting, blasting, smoking or campfire recipe.
type CookingRecipe struct {
	Serializer  RecipeSerializer
	Group       string
	Ingredient  Ingredient
	Result      Slot
	Experience  float32
	CookingTime int32
}

type StonecuttingRecipe struct {
	Group      string
	Ingredient Ingredient
	Result     Slot
}

type SmithingRecipe struct {
	Base     Ingredient
	Addition Ingredient
	Result   Slot
}

func (ShapelessRecipe) RecipeSerializer() RecipeSerializer    { return RecipeShapeless }
func (ShapedRecipe) RecipeSerializer() RecipeSerializer       { return RecipeShaped }
func (r SpecialRecipe) RecipeSerializer() RecipeSerializer    { return r.Serializer }
func (r CookingRecipe) RecipeSerializer() RecipeSerializer    { return r.Serializer }
func (StonecuttingRecipe) RecipeSerializer() RecipeSerializer { return RecipeStonecutting }
func (SmithingRecipe) RecipeSerializer() RecipeSerializer     { return RecipeSmithing }

func isCooking(s RecipeSerializer) bool {
	switch s {
	case RecipeSmelting, RecipeBlasting, RecipeSmoking, RecipeCampfireCooking:
		return true
	}
	return false
}

type Recipe struct {
	ID   Identifier
	Data RecipeData
}

func writeRecipe(w io.Writer, v Recipe) (err error) {
	if v.Data == nil {
		return fmt.Errorf("recipe %s has no data", v.ID)
	}
	serializer := v.Data.RecipeSerializer()
	if !RecipeSerializers.Has(serializer) {
		return unknown("recipe serializer", serializer)
	}
	if err = WriteIdentifier(w, Identifier(serializer)); err != nil {
		return
	}
	if err = WriteIdentifier(w, v.ID); err != nil {
		return
	}

	switch d := v.Data.(type) {
	case ShapelessRecipe:
		if err = WriteString(w, d.Group); err != nil {
			return
		}
		if err = WritePrefixedArray(w, d.Ingredients, WriteIngredient); err != nil {
			return
		}
		return WriteSlot(w, d.Result)
	case ShapedRecipe:
		if err = WriteVarInt(w, d.Width); err != nil {
			return
		}
		if err = WriteVarInt(w, d.Height); err != nil {
			return
		}
		if err = WriteString(w, d.Group); err != nil {
			return
		}
		if err = WriteFixedArray(w, d.Ingredients, WriteIngredient, int(d.Width*d.Height)); err != nil {
			return
		}
		return WriteSlot(w, d.Result)
	case SpecialRecipe:
		if d.Serializer == RecipeShapeless || d.Serializer == RecipeShaped || isCooking(d.Serializer) ||
			d.Serializer == RecipeStonecutting || d.Serializer == RecipeSmithing {
			return fmt.Errorf("recipe type %s carries data", d.Serializer)
		}
		return nil
	case CookingRecipe:
		if !isCooking(d.Serializer) {
			return fmt.Errorf("recipe type %s is not a cooking recipe", d.Serializer)
		}
		if err = WriteString(w, d.Group); err != nil {
			return
		}
		if err = WriteIngredient(w, d.Ingredient); err != nil {
			return
		}
		if err = WriteSlot(w, d.Result); err != nil {
			return
		}
		if err = WriteFloat(w, d.Experience); err != nil {
			return
		}
		return WriteVarInt(w, d.CookingTime)
	case StonecuttingRecipe:
		if err = WriteString(w, d.Group); err != nil {
			return
		}
		if err = WriteIngredient(w, d.Ingredient); err != nil {
			return
		}
		return WriteSlot(w, d.Result)
	case SmithingRecipe:
		if err = WriteIngredient(w, d.Base); err != nil {
			return
		}
		if err = WriteIngredient(w, d.Addition); err != nil {
			return
		}
		return WriteSlot(w, d.Result)
	}
	return fmt.Errorf("unsupported recipe data %T", v.Data)
}

func readRecipe(r *FrameReader) (v Recipe, err error) {
	typ, err := ReadIdentifier(r)
	if err != nil {
		return
	}
	serializer := RecipeSerializer(typ)
	if !RecipeSerializers.Has(serializer) {
		return v, unknown("recipe serializer", typ)
	}
	if v.ID, err = ReadIdentifier(r); err != nil {
		return
	}

	switch {
	case serializer == RecipeShapeless:
		var d ShapelessRecipe
		if d.Group, err = ReadString(r); err != nil {
			return
		}
		if d.Ingredients, err = ReadPrefixedArray(r, ReadIngredient); err != nil {
			return
		}
		d.Result, err = ReadSlot(r)
		v.Data = d
	case serializer == RecipeShaped:
		var d ShapedRecipe
		if d.Width, err = ReadVarInt(r); err != nil {
			return
		}
		if d.Height, err = ReadVarInt(r); err != nil {
			return
		}
		if d.Group, err = ReadString(r); err != nil {
			return
		}
		if d.Ingredients, err = ReadFixedArray(r, ReadIngredient, int(d.Width*d.Height)); err != nil {
			return
		}
		d.Result, err = ReadSlot(r)
		v.Data = d
	case isCooking(serializer):
		d := CookingRecipe{Serializer: serializer}
		if d.Group, err = ReadString(r); err != nil {
			return
		}
		if d.Ingredient, err = ReadIngredient(r); err != nil {
			return
		}
		if d.Result, err = ReadSlot(r); err != nil {
			return
		}
		if d.Experience, err = ReadFloat(r); err != nil {
			return
		}
		d.CookingTime, err = ReadVarInt(r)
		v.Data = d
	case serializer == RecipeStonecutting:
		var d StonecuttingRecipe
		if d.Group, err = ReadString(r); err != nil {
			return
		}
		if d.Ingredient, err = ReadIngredient(r); err != nil {
			return
		}
		d.Result, err = ReadSlot(r)
		v.Data = d
	case serializer == RecipeSmithing:
		var d SmithingRecipe
		if d.Base, err = ReadIngredient(r); err != nil {
			return
		}
		if d.Addition, err = ReadIngredient(r); err != nil {
			return
		}
		d.Result, err = ReadSlot(r)
		v.Data = d
	default:
		v.Data = SpecialRecipe{Serializer: serializer}
	}
	return
}

// @gen:r,w,cb=0x6A
type UpdateRecipes struct {
	Recipes []Recipe `field:"PrefixedArray" write:"writeRecipe" read:"readRecipe"`
}

// @gen:r,w,sb=0x0A
type ClickContainerButton struct {
	WindowID int8 `field:"SignedByte"`
	ButtonID int8 `field:"SignedByte"`
}

// ChangedSlot is the client's prediction of a slot after a click.
type ChangedSlot struct {
	Slot int16
	Item Slot
}

func writeChangedSlot(w io.Writer, v ChangedSlot) (err error) {
	if err = WriteShort(w, v.Slot); err != nil {
		return
	}
	return WriteSlot(w, v.Item)
}

func readChangedSlot(r *FrameReader) (v ChangedSlot, err error) {
	if v.Slot, err = ReadShort(r); err != nil {
		return
	}
	v.Item, err = ReadSlot(r)
	return
}

// @gen:r,w,sb=0x0B
type ClickContainer struct {
	WindowID     byte          `field:"Byte"`
	StateID      int32         `field:"VarInt"`
	Slot         int16         `field:"Short"`
	Button       int8          `field:"SignedByte"`
	Mode         ClickMode     `field:"VarIntEnum" args:"ClickModes"`
	ChangedSlots []ChangedSlot `field:"PrefixedArray" write:"writeChangedSlot" read:"readChangedSlot"`
	CarriedItem  Slot          `field:"Slot"`
}

// @gen:r,w,sb=0x0C
type ServerboundCloseContainer struct {
	WindowID byte `field:"Byte"`
}

// Book text limits.
const (
	BookPageMax  = 8192
	BookTitleMax = 128
)

func writeBookPage(w io.Writer, v string) error {
	return WriteBoundedString(w, v, BookPageMax)
}

func readBookPage(r *FrameReader) (string, error) {
	return ReadBoundedString(r, BookPageMax)
}

func writeBookTitle(w io.Writer, v string) error {
	return WriteBoundedString(w, v, BookTitleMax)
}

func readBookTitle(r *FrameReader) (string, error) {
	return ReadBoundedString(r, BookTitleMax)
}

// @gen:r,w,sb=0x0E
type EditBook struct {
	Slot    int32            `field:"VarInt"`
	Entries []string         `field:"PrefixedArray" write:"writeBookPage" read:"readBookPage"`
	Title   Optional[string] `field:"Optional" write:"writeBookTitle" read:"readBookTitle"`
}

// @gen:r,w,sb=0x1A
type PickItem struct {
	Slot int32 `field:"VarInt"`
}

// @gen:r,w,sb=0x1B
type PlaceRecipe struct {
	WindowID int8       `field:"SignedByte"`
	Recipe   Identifier `field:"Identifier"`
	MakeAll  bool       `field:"Boolean"`
}

// @gen:r,w,sb=0x21
type ChangeRecipeBookSettings struct {
	Book      RecipeBookType `field:"VarIntEnum" args:"RecipeBookTypes"`
	Open      bool           `field:"Boolean"`
	Filtering bool           `field:"Boolean"`
}

// @gen:r,w,sb=0x22
type SetSeenRecipe struct {
	Recipe Identifier `field:"Identifier"`
}

// @gen:r,w,sb=0x23
type RenameItem struct {
	Name string `field:"String"`
}

// @gen:r,w,sb=0x26
type SelectTrade struct {
	Slot int32 `field:"VarInt"`
}

// @gen:r,w,sb=0x27
type SetBeaconEffect struct {
	PrimaryEffect   Optional[int32] `field:"Optional" inner:"VarInt"`
	SecondaryEffect Optional[int32] `field:"Optional" inner:"VarInt"`
}

// @gen:r,w,sb=0x28
type ServerboundSetHeldItem struct {
	Slot int16 `field:"Short"`
}

// @gen:r,w,sb=0x2B
type SetCreativeModeSlot struct {
	Slot int16 `field:"Short"`
	Item Slot  `field:"Slot"`
}
