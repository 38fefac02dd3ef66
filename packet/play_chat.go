package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// ChatMessageMax bounds chat messages and commands typed by a player.
const ChatMessageMax = 256

// @gen:r,w,cb=0x0C
type ChatPreview struct {
	QueryID int32          `field:"Int"`
	Message Optional[Chat] `field:"Optional" inner:"Chat"`
}

// @gen:r,w,cb=0x0D
type ClearTitles struct {
	Reset bool `field:"Boolean"`
}

type SuggestionMatch struct {
	Match   string
	Tooltip Optional[Chat]
}

func writeSuggestionMatch(w io.Writer, v SuggestionMatch) (err error) {
	if err = WriteString(w, v.Match); err != nil {
		return
	}
	return WriteOptional(w, v.Tooltip, WriteChat)
}

func readSuggestionMatch(r *FrameReader) (v SuggestionMatch, err error) {
	if v.Match, err = ReadString(r); err != nil {
		return
	}
	v.Tooltip, err = ReadOptional(r, ReadChat)
	return
}

// @gen:r,w,cb=0x0E
type CommandSuggestionsResponse struct {
	TransactionID int32             `field:"VarInt"`
	Start         int32             `field:"VarInt"`
	Length        int32             `field:"VarInt"`
	Matches       []SuggestionMatch `field:"PrefixedArray" write:"writeSuggestionMatch" read:"readSuggestionMatch"`
}

// @gen:r,w,cb=0x15
type ChatSuggestions struct {
	Action  ChatSuggestionAction `field:"VarIntEnum" args:"ChatSuggestionActions"`
	Entries []string             `field:"PrefixedArray" inner:"String"`
}

// @gen:r,w,cb=0x18
type DeleteMessage struct {
	Signature []byte `field:"ByteArray"`
}

// @gen:r,w,cb=0x32
type MessageHeader struct {
	PrecedingSignature Optional[[]byte] `field:"Optional" inner:"ByteArray"`
	Sender             uuid.UUID        `field:"UUID"`
	HeaderSignature    []byte           `field:"ByteArray"`
	BodyDigest         []byte           `field:"ByteArray"`
}

// LastSeenMessage acknowledges a signed message by its sender and
// signature.
type LastSeenMessage struct {
	ProfileID uuid.UUID
	Signature []byte
}

func writeLastSeenMessage(w io.Writer, v LastSeenMessage) (err error) {
	if err = WriteUUID(w, v.ProfileID); err != nil {
		return
	}
	return WriteByteArray(w, v.Signature)
}

func readLastSeenMessage(r *FrameReader) (v LastSeenMessage, err error) {
	if v.ProfileID, err = ReadUUID(r); err != nil {
		return
	}
	v.Signature, err = ReadByteArray(r)
	return
}

// LastSeenMessages is the acknowledgement state a client attaches to what
// it sends.
type LastSeenMessages struct {
	Entries      []LastSeenMessage
	LastReceived Optional[LastSeenMessage]
}

func writeLastSeenMessages(w io.Writer, v LastSeenMessages) (err error) {
	if err = WritePrefixedArray(w, v.Entries, writeLastSeenMessage); err != nil {
		return
	}
	return WriteOptional(w, v.LastReceived, writeLastSeenMessage)
}

func readLastSeenMessages(r *FrameReader) (v LastSeenMessages, err error) {
	if v.Entries, err = ReadPrefixedArray(r, readLastSeenMessage); err != nil {
		return
	}
	v.LastReceived, err = ReadOptional(r, readLastSeenMessage)
	return
}

// FilterMask tells which parts of a chat message the server filtered.
type FilterMask interface {
	filterMaskType() int32
}

type PassThrough struct{}

type FullyFiltered struct{}

// PartiallyFiltered hides the characters whose bit is set.
type PartiallyFiltered struct {
	Mask BitSet
}

func (PassThrough) filterMaskType() int32       { return 0 }
func (FullyFiltered) filterMaskType() int32     { return 1 }
func (PartiallyFiltered) filterMaskType() int32 { return 2 }

func writeFilterMask(w io.Writer, v FilterMask) (err error) {
	if v == nil {
		v = PassThrough{}
	}
	if err = WriteVarInt(w, v.filterMaskType()); err != nil {
		return
	}
	switch m := v.(type) {
	case PassThrough, FullyFiltered:
		return nil
	case PartiallyFiltered:
		return WriteBitSet(w, m.Mask)
	}
	return fmt.Errorf("unsupported filter mask %T", v)
}

func readFilterMask(r *FrameReader) (v FilterMask, err error) {
	typ, err := ReadVarInt(r)
	if err != nil {
		return
	}
	switch typ {
	case 0:
		return PassThrough{}, nil
	case 1:
		return FullyFiltered{}, nil
	case 2:
		var m PartiallyFiltered
		if m.Mask, err = ReadBitSet(r); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, unknown("filter mask", typ)
}

// PlayerChatMessage is a signed chat message relayed from another player.
//
// @gen:r,w,cb=0x33
type PlayerChatMessage struct {
	PreviousSignature Optional[[]byte]  `field:"Optional" inner:"ByteArray"`
	Sender            uuid.UUID         `field:"UUID"`
	HeaderSignature   []byte            `field:"ByteArray"`
	PlainMessage      string            `field:"BoundedString" args:"ChatMessageMax"`
	FormattedMessage  Optional[Chat]    `field:"Optional" inner:"Chat"`
	Timestamp         int64             `field:"Long"`
	Salt              int64             `field:"Long"`
	PreviousMessages  []LastSeenMessage `field:"PrefixedArray" write:"writeLastSeenMessage" read:"readLastSeenMessage"`
	UnsignedContent   Optional[Chat]    `field:"Optional" inner:"Chat"`
	Filter            FilterMask        `write:"writeFilterMask" read:"readFilterMask"`
	ChatType          int32             `field:"VarInt"`
	NetworkName       Chat              `field:"Chat"`
	NetworkTargetName Optional[Chat]    `field:"Optional" inner:"Chat"`
}

// @gen:r,w,cb=0x43
type SetActionBarText struct {
	Text Chat `field:"Chat"`
}

// @gen:r,w,cb=0x4E
type SetDisplayChatPreview struct {
	Enabled bool `field:"Boolean"`
}

// @gen:r,w,cb=0x5B
type SetSubtitleText struct {
	Text Chat `field:"Chat"`
}

// @gen:r,w,cb=0x5D
type SetTitleText struct {
	Text Chat `field:"Chat"`
}

// @gen:r,w,cb=0x5E
type SetTitleAnimationTimes struct {
	FadeIn  int32 `field:"Int"`
	Stay    int32 `field:"Int"`
	FadeOut int32 `field:"Int"`
}

// @gen:r,w,cb=0x62
type SystemChatMessage struct {
	Content Chat `field:"Chat"`
	Overlay bool `field:"Boolean"`
}

// @gen:r,w,cb=0x63
type SetTabListHeaderAndFooter struct {
	Header Chat `field:"Chat"`
	Footer Chat `field:"Chat"`
}

// @gen:r,w,sb=0x03
type MessageAcknowledgment struct {
	Acknowledgement LastSeenMessages `write:"writeLastSeenMessages" read:"readLastSeenMessages"`
}

// ArgumentSignature signs one message argument of a command.
type ArgumentSignature struct {
	Name      string
	Signature []byte
}

func writeArgumentSignature(w io.Writer, v ArgumentSignature) (err error) {
	if err = WriteBoundedString(w, v.Name, 16); err != nil {
		return
	}
	return WriteByteArray(w, v.Signature)
}

func readArgumentSignature(r *FrameReader) (v ArgumentSignature, err error) {
	if v.Name, err = ReadBoundedString(r, 16); err != nil {
		return
	}
	v.Signature, err = ReadByteArray(r)
	return
}

// @gen:r,w,sb=0x04
type ChatCommand struct {
	Command            string              `field:"BoundedString" args:"ChatMessageMax"`
	Timestamp          int64               `field:"Long"`
	Salt               int64               `field:"Long"`
	ArgumentSignatures []ArgumentSignature `field:"PrefixedArray" write:"writeArgumentSignature" read:"readArgumentSignature"`
	SignedPreview      bool                `field:"Boolean"`
	Acknowledgement    LastSeenMessages    `write:"writeLastSeenMessages" read:"readLastSeenMessages"`
}

// @gen:r,w,sb=0x05
type ChatMessage struct {
	Message         string           `field:"BoundedString" args:"ChatMessageMax"`
	Timestamp       int64            `field:"Long"`
	Salt            int64            `field:"Long"`
	Signature       []byte           `field:"ByteArray"`
	SignedPreview   bool             `field:"Boolean"`
	Acknowledgement LastSeenMessages `write:"writeLastSeenMessages" read:"readLastSeenMessages"`
}

// @gen:r,w,sb=0x06
type ServerboundChatPreview struct {
	QueryID int32  `field:"Int"`
	Message string `field:"BoundedString" args:"ChatMessageMax"`
}

// @gen:r,w,sb=0x09
type CommandSuggestionsRequest struct {
	TransactionID int32  `field:"VarInt"`
	Text          string `field:"BoundedString" args:"32500"`
}
