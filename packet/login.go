package packet

import (
	"crypto/md5"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// PlayerKey is the public key a client signs its chat with.
type PlayerKey struct {
	ExpiresAt int64
	PublicKey []byte
	Signature []byte
}

func writePlayerKey(w io.Writer, v PlayerKey) (err error) {
	if err = WriteLong(w, v.ExpiresAt); err != nil {
		return
	}
	if err = WriteByteArray(w, v.PublicKey); err != nil {
		return
	}
	return WriteByteArray(w, v.Signature)
}

func readPlayerKey(r *FrameReader) (v PlayerKey, err error) {
	if v.ExpiresAt, err = ReadLong(r); err != nil {
		return
	}
	if v.PublicKey, err = ReadByteArray(r); err != nil {
		return
	}
	v.Signature, err = ReadByteArray(r)
	return
}

// @gen:r,w,sb=0x00
type LoginStart struct {
	Name       string              `field:"BoundedString" args:"16"`
	Key        Optional[PlayerKey] `field:"Optional" write:"writePlayerKey" read:"readPlayerKey"`
	PlayerUUID Optional[uuid.UUID] `field:"Optional" inner:"UUID"`
}

// EncryptionProof is how a client proves it decrypted the verify token:
// by echoing it or by signing a salt with its chat key.
type EncryptionProof interface {
	isEncryptionProof()
}

type VerifyTokenProof struct {
	Token []byte
}

type SaltSignatureProof struct {
	Salt      int64
	Signature []byte
}

func (VerifyTokenProof) isEncryptionProof()   {}
func (SaltSignatureProof) isEncryptionProof() {}

func writeEncryptionProof(w io.Writer, v EncryptionProof) (err error) {
	switch p := v.(type) {
	case VerifyTokenProof:
		if err = WriteBoolean(w, true); err != nil {
			return
		}
		return WriteByteArray(w, p.Token)
	case SaltSignatureProof:
		if err = WriteBoolean(w, false); err != nil {
			return
		}
		if err = WriteLong(w, p.Salt); err != nil {
			return
		}
		return WriteByteArray(w, p.Signature)
	}
	return fmt.Errorf("unsupported encryption proof %T", v)
}

func readEncryptionProof(r *FrameReader) (v EncryptionProof, err error) {
	hasToken, err := ReadBoolean(r)
	if err != nil {
		return
	}
	if hasToken {
		var p VerifyTokenProof
		if p.Token, err = ReadByteArray(r); err != nil {
			return nil, err
		}
		return p, nil
	}

	var p SaltSignatureProof
	if p.Salt, err = ReadLong(r); err != nil {
		return nil, err
	}
	if p.Signature, err = ReadByteArray(r); err != nil {
		return nil, err
	}
	return p, nil
}

// @gen:r,w,sb=0x01
type EncryptionResponse struct {
	SharedSecret []byte          `field:"ByteArray"`
	Proof        EncryptionProof `write:"writeEncryptionProof" read:"readEncryptionProof"`
}

// @gen:r,w,sb=0x02
type LoginPluginResponse struct {
	MessageID  int32  `field:"VarInt"`
	Successful bool   `field:"Boolean"`
	Data       []byte `field:"RestBytes"`
}

// @gen:r,w,cb=0x00
type LoginDisconnect struct {
	Reason Chat `field:"Chat"`
}

// @gen:r,w,cb=0x01
type EncryptionRequest struct {
	ServerID    string `field:"BoundedString" args:"20"`
	PublicKey   []byte `field:"ByteArray"`
	VerifyToken []byte `field:"ByteArray"`
}

// ProfileProperty is a signed game profile property such as "textures".
type ProfileProperty struct {
	Name      string
	Value     string
	Signature Optional[string]
}

func writeProfileProperty(w io.Writer, v ProfileProperty) (err error) {
	if err = WriteString(w, v.Name); err != nil {
		return
	}
	if err = WriteString(w, v.Value); err != nil {
		return
	}
	err = WriteOptional(w, v.Signature, WriteString)
	return
}

func readProfileProperty(r *FrameReader) (v ProfileProperty, err error) {
	v.Name, err = ReadString(r)
	if err != nil {
		return
	}
	v.Value, err = ReadString(r)
	if err != nil {
		return
	}
	v.Signature, err = ReadOptional(r, ReadString)
	return
}

// @gen:r,w,cb=0x02
type LoginSuccess struct {
	UUID       uuid.UUID         `field:"UUID"`
	Username   string            `field:"BoundedString" args:"16"`
	Properties []ProfileProperty `field:"PrefixedArray" write:"writeProfileProperty" read:"readProfileProperty"`
}

// @gen:r,w,cb=0x03
type SetCompression struct {
	Threshold int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x04
type LoginPluginRequest struct {
	MessageID int32      `field:"VarInt"`
	Channel   Identifier `field:"Identifier"`
	Data      []byte     `field:"RestBytes"`
}

// OfflineUUID derives the UUID an offline-mode server assigns to name.
func OfflineUUID(name string) uuid.UUID {
	h := md5.Sum([]byte("OfflinePlayer:" + name))
	h[6] = h[6]&0x0f | 0x30
	h[8] = h[8]&0x3f | 0x80
	return uuid.UUID(h)
}
