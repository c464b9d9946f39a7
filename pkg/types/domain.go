package types

// Model represents a translation model discovered on disk.
type Model struct {
	// Language pair key the model is loaded under.
	// example: en-de
	Pair string `json:"pair" example:"en-de"`
	// Source language code.
	// example: en
	From string `json:"from" example:"en"`
	// Target language code.
	// example: de
	To string `json:"to" example:"de"`
	// Absolute path to the model directory.
	// example: /home/user/models/bergamot/ende
	Dir string `json:"dir" example:"/home/user/models/bergamot/ende"`
	// Resolved artifact paths.
	Files ModelFiles `json:"files"`
}

// ModelFiles mirrors bergamot.ModelFiles for the API surface.
type ModelFiles struct {
	SrcVocab  string `json:"src_vocab"`
	TrgVocab  string `json:"trg_vocab"`
	Model     string `json:"model"`
	Shortlist string `json:"shortlist"`
}
