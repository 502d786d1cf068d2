package model

// TierView is one rung of the bitrate ladder as seen across the boundary.
type TierView struct {
	Index       int `json:"index"`
	BitrateKbps int `json:"bitrateKbps"`
}

// CodecView is one codec table entry as seen across the boundary.
type CodecView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
