package models

import "encoding/json"

// Session is the token pair returned by the Bookla client login. Unknown
// fields are carried through so the login endpoint can return the upstream
// payload unmodified.
type Session struct {
	AccessToken  string
	RefreshToken string

	extra map[string]json.RawMessage
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	popString(fields, "accessToken", &s.AccessToken)
	popString(fields, "refreshToken", &s.RefreshToken)
	s.extra = fields
	return nil
}

func (s Session) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}
	putString(out, "accessToken", s.AccessToken)
	putString(out, "refreshToken", s.RefreshToken)
	return json.Marshal(out)
}
