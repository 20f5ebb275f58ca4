package request

// SelectRequest is the request body for selecting a cube.
// CubeID is a pointer so a missing field can be told apart from cube 0.
type SelectRequest struct {
	CubeID *int `json:"cube_id"`
}
