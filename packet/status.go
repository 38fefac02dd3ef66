package packet

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// @gen:r,w,sb=0x00
type StatusRequest struct{}

// @gen:r,w,sb=0x01
type PingRequest struct {
	Payload int64 `field:"Long"`
}

// @gen:r,w,cb=0x00
type StatusResponse struct {
	JSONResponse string `field:"String"`
}

// @gen:r,w,cb=0x01
type PongResponse struct {
	Payload int64 `field:"Long"`
}

// ServerStatus is the document carried by StatusResponse.
type ServerStatus struct {
	Version            StatusVersion `json:"version"`
	Players            StatusPlayers `json:"players"`
	Description        Chat          `json:"description"`
	Favicon            string        `json:"favicon,omitempty"`
	PreviewsChat       bool          `json:"previewsChat,omitempty"`
	EnforcesSecureChat bool          `json:"enforcesSecureChat,omitempty"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type StatusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []StatusPlayer `json:"sample,omitempty"`
}

type StatusPlayer struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

func NewStatusResponse(s ServerStatus) (*StatusResponse, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{JSONResponse: string(b)}, nil
}

// Status parses the JSON document of the response.
func (p StatusResponse) Status() (s ServerStatus, err error) {
	err = json.Unmarshal([]byte(p.JSONResponse), &s)
	return
}
