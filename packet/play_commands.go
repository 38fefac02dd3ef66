package packet

import (
	"fmt"
	"io"
)

type ArgumentParser string

const (
	ParserBool          ArgumentParser = "brigadier:bool"
	ParserFloat         ArgumentParser = "brigadier:float"
	ParserDouble        ArgumentParser = "brigadier:double"
	ParserInteger       ArgumentParser = "brigadier:integer"
	ParserLong          ArgumentParser = "brigadier:long"
	ParserString        ArgumentParser = "brigadier:string"
	ParserEntity        ArgumentParser = "minecraft:entity"
	ParserScoreHolder   ArgumentParser = "minecraft:score_holder"
	ParserResourceOrTag ArgumentParser = "minecraft:resource_or_tag"
	ParserResource      ArgumentParser = "minecraft:resource"
)

var ArgumentParsers = NewMapper[ArgumentParser]("argument parser",
	ParserBool, ParserFloat, ParserDouble, ParserInteger, ParserLong, ParserString,
	ParserEntity, "minecraft:game_profile", "minecraft:block_pos",
	"minecraft:column_pos", "minecraft:vec3", "minecraft:vec2",
	"minecraft:block_state", "minecraft:block_predicate", "minecraft:item_stack",
	"minecraft:item_predicate", "minecraft:color", "minecraft:component",
	"minecraft:message", "minecraft:nbt", "minecraft:nbt_tag",
	"minecraft:nbt_path", "minecraft:objective", "minecraft:objective_criteria",
	"minecraft:operation", "minecraft:particle", "minecraft:angle",
	"minecraft:rotation", "minecraft:scoreboard_slot", ParserScoreHolder,
	"minecraft:swizzle", "minecraft:team", "minecraft:item_slot",
	"minecraft:resource_location", "minecraft:mob_effect", "minecraft:function",
	"minecraft:entity_anchor", "minecraft:int_range", "minecraft:float_range",
	"minecraft:item_enchantment", "minecraft:entity_summon", "minecraft:dimension",
	"minecraft:time", ParserResourceOrTag, ParserResource,
	"minecraft:template_mirror", "minecraft:template_rotation", "minecraft:uuid",
)

type StringArgBehavior string

const (
	SingleWord     StringArgBehavior = "single_word"
	QuotablePhrase StringArgBehavior = "quotable_phrase"
	GreedyPhrase   StringArgBehavior = "greedy_phrase"
)

var StringArgBehaviors = NewMapper("string argument behavior", SingleWord, QuotablePhrase, GreedyPhrase)

// ArgumentProperties is the parser of an argument node with its
// parser-specific properties.
type ArgumentProperties interface {
	ArgumentParser() ArgumentParser
}

// SimpleArgument is any parser without properties.
type SimpleArgument struct {
	Parser ArgumentParser
}

type FloatArgument struct {
	Min, Max Optional[float32]
}

type DoubleArgument struct {
	Min, Max Optional[float64]
}

type IntegerArgument struct {
	Min, Max Optional[int32]
}

type LongArgument struct {
	Min, Max Optional[int64]
}

type StringArgument struct {
	Behavior StringArgBehavior
}

// Entity argument flags.
const (
	EntitySingle      byte = 0x01
	EntityPlayersOnly byte = 0x02
)

type EntityArgument struct {
	Flags byte
}

type ScoreHolderArgument struct {
	AllowMultiple bool
}

// ResourceArgument is minecraft:resource or minecraft:resource_or_tag
// over a registry.
type ResourceArgument struct {
	Parser   ArgumentParser
	Registry Identifier
}

func (a SimpleArgument) ArgumentParser() ArgumentParser    { return a.Parser }
func (FloatArgument) ArgumentParser() ArgumentParser       { return ParserFloat }
func (DoubleArgument) ArgumentParser() ArgumentParser      { return ParserDouble }
func (IntegerArgument) ArgumentParser() ArgumentParser     { return ParserInteger }
func (LongArgument) ArgumentParser() ArgumentParser        { return ParserLong }
func (StringArgument) ArgumentParser() ArgumentParser      { return ParserString }
func (EntityArgument) ArgumentParser() ArgumentParser      { return ParserEntity }
func (ScoreHolderArgument) ArgumentParser() ArgumentParser { return ParserScoreHolder }
func (a ResourceArgument) ArgumentParser() ArgumentParser  { return a.Parser }

// Bound flags of numeric arguments.
const (
	hasMin byte = 0x01
	hasMax byte = 0x02
)

const scoreHolderMultiple byte = 0x01

func writeBounds[T any](w io.Writer, min, max Optional[T], write WriteFn[T]) (err error) {
	var flags byte
	if min.Exists {
		flags |= hasMin
	}
	if max.Exists {
		flags |= hasMax
	}
	if err = WriteByte(w, flags); err != nil {
		return
	}
	if min.Exists {
		if err = write(w, min.Item); err != nil {
			return
		}
	}
	if max.Exists {
		err = write(w, max.Item)
	}
	return
}

func readBounds[T any](r *FrameReader, read ReadFn[T]) (min, max Optional[T], err error) {
	flags, err := r.ReadByte()
	if err != nil {
		return
	}
	if err = checkFlags("argument bound flags", flags, hasMin|hasMax); err != nil {
		return
	}
	if flags&hasMin != 0 {
		if min.Item, err = read(r); err != nil {
			return
		}
		min.Exists = true
	}
	if flags&hasMax != 0 {
		if max.Item, err = read(r); err != nil {
			return
		}
		max.Exists = true
	}
	return
}

func argumentHasProperties(p ArgumentParser) bool {
	switch p {
	case ParserFloat, ParserDouble, ParserInteger, ParserLong, ParserString,
		ParserEntity, ParserScoreHolder, ParserResource, ParserResourceOrTag:
		return true
	}
	return false
}

func WriteArgumentProperties(w io.Writer, v ArgumentProperties) (err error) {
	if err = WriteVarIntEnum(w, v.ArgumentParser(), ArgumentParsers); err != nil {
		return
	}

	switch a := v.(type) {
	case SimpleArgument:
		if argumentHasProperties(a.Parser) {
			return fmt.Errorf("argument parser %s requires properties", a.Parser)
		}
		return nil
	case FloatArgument:
		return writeBounds(w, a.Min, a.Max, WriteFloat)
	case DoubleArgument:
		return writeBounds(w, a.Min, a.Max, WriteDouble)
	case IntegerArgument:
		return writeBounds(w, a.Min, a.Max, WriteInt)
	case LongArgument:
		return writeBounds(w, a.Min, a.Max, WriteLong)
	case StringArgument:
		return WriteVarIntEnum(w, a.Behavior, StringArgBehaviors)
	case EntityArgument:
		return WriteByte(w, a.Flags)
	case ScoreHolderArgument:
		var flags byte
		if a.AllowMultiple {
			flags = scoreHolderMultiple
		}
		return WriteByte(w, flags)
	case ResourceArgument:
		if a.Parser != ParserResource && a.Parser != ParserResourceOrTag {
			return fmt.Errorf("argument parser %s does not take a registry", a.Parser)
		}
		return WriteIdentifier(w, a.Registry)
	}
	return fmt.Errorf("unsupported argument properties %T", v)
}

func ReadArgumentProperties(r *FrameReader) (v ArgumentProperties, err error) {
	parser, err := ReadVarIntEnum(r, ArgumentParsers)
	if err != nil {
		return
	}

	switch parser {
	case ParserFloat:
		var a FloatArgument
		a.Min, a.Max, err = readBounds(r, ReadFloat)
		v = a
	case ParserDouble:
		var a DoubleArgument
		a.Min, a.Max, err = readBounds(r, ReadDouble)
		v = a
	case ParserInteger:
		var a IntegerArgument
		a.Min, a.Max, err = readBounds(r, ReadInt)
		v = a
	case ParserLong:
		var a LongArgument
		a.Min, a.Max, err = readBounds(r, ReadLong)
		v = a
	case ParserString:
		var a StringArgument
		a.Behavior, err = ReadVarIntEnum(r, StringArgBehaviors)
		v = a
	case ParserEntity:
		var a EntityArgument
		a.Flags, err = r.ReadByte()
		v = a
	case ParserScoreHolder:
		var flags byte
		if flags, err = r.ReadByte(); err == nil {
			err = checkFlags("score holder flags", flags, scoreHolderMultiple)
		}
		v = ScoreHolderArgument{AllowMultiple: flags&scoreHolderMultiple != 0}
	case ParserResource, ParserResourceOrTag:
		a := ResourceArgument{Parser: parser}
		a.Registry, err = ReadIdentifier(r)
		v = a
	default:
		v = SimpleArgument{Parser: parser}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Command node flags.
const (
	nodeTypeMask       byte = 0x03
	nodeExecutable     byte = 0x04
	nodeHasRedirect    byte = 0x08
	nodeHasSuggestions byte = 0x10

	nodeFlags = nodeTypeMask | nodeExecutable | nodeHasRedirect | nodeHasSuggestions
)

// CommandNodeType is the role of a node in the command graph.
type CommandNodeType interface {
	commandNodeType() byte
}

type RootNode struct{}

type LiteralNode struct {
	Name string
}

type ArgumentNode struct {
	Name        string
	Properties  ArgumentProperties
	Suggestions Optional[Identifier]
}

func (RootNode) commandNodeType() byte     { return 0 }
func (LiteralNode) commandNodeType() byte  { return 1 }
func (ArgumentNode) commandNodeType() byte { return 2 }

// CommandNode is one node of the command graph. Children and Redirect are
// indices into the node list of the Commands packet.
type CommandNode struct {
	Executable bool
	Children   []int32
	Redirect   Optional[int32]
	Type       CommandNodeType
}

func writeCommandNode(w io.Writer, v CommandNode) (err error) {
	if v.Type == nil {
		return fmt.Errorf("command node type is required")
	}

	flags := v.Type.commandNodeType()
	if v.Executable {
		flags |= nodeExecutable
	}
	if v.Redirect.Exists {
		flags |= nodeHasRedirect
	}
	arg, isArg := v.Type.(ArgumentNode)
	if isArg && arg.Suggestions.Exists {
		flags |= nodeHasSuggestions
	}

	if err = WriteByte(w, flags); err != nil {
		return
	}
	if err = WritePrefixedArray(w, v.Children, WriteVarInt); err != nil {
		return
	}
	if v.Redirect.Exists {
		if err = WriteVarInt(w, v.Redirect.Item); err != nil {
			return
		}
	}

	switch n := v.Type.(type) {
	case RootNode:
		return nil
	case LiteralNode:
		return WriteString(w, n.Name)
	case ArgumentNode:
		if n.Properties == nil {
			return fmt.Errorf("argument node %q has no parser", n.Name)
		}
		if err = WriteString(w, n.Name); err != nil {
			return
		}
		if err = WriteArgumentProperties(w, n.Properties); err != nil {
			return
		}
		if n.Suggestions.Exists {
			return WriteIdentifier(w, n.Suggestions.Item)
		}
		return nil
	}
	return fmt.Errorf("unsupported command node type %T", v.Type)
}

func readCommandNode(r *FrameReader) (v CommandNode, err error) {
	flags, err := r.ReadByte()
	if err != nil {
		return
	}
	typ := flags & nodeTypeMask
	switch {
	case typ > 2:
		return v, unknown("command node type", int32(typ))
	case flags&nodeHasSuggestions != 0 && typ != 2:
		return v, unknown("command node flags", flags)
	}
	if err = checkFlags("command node flags", flags, nodeFlags); err != nil {
		return
	}
	v.Executable = flags&nodeExecutable != 0

	if v.Children, err = ReadPrefixedArray(r, ReadVarInt); err != nil {
		return
	}
	if flags&nodeHasRedirect != 0 {
		if v.Redirect.Item, err = ReadVarInt(r); err != nil {
			return
		}
		v.Redirect.Exists = true
	}

	switch typ {
	case 0:
		v.Type = RootNode{}
	case 1:
		var n LiteralNode
		if n.Name, err = ReadString(r); err != nil {
			return
		}
		v.Type = n
	case 2:
		var n ArgumentNode
		if n.Name, err = ReadString(r); err != nil {
			return
		}
		if n.Properties, err = ReadArgumentProperties(r); err != nil {
			return
		}
		if flags&nodeHasSuggestions != 0 {
			if n.Suggestions.Item, err = ReadIdentifier(r); err != nil {
				return
			}
			n.Suggestions.Exists = true
		}
		v.Type = n
	}
	return
}

// Commands sends the whole command graph.
//
// @gen:r,w,cb=0x0F
type Commands struct {
	Nodes     []CommandNode `field:"PrefixedArray" write:"writeCommandNode" read:"readCommandNode"`
	RootIndex int32         `field:"VarInt"`
}
