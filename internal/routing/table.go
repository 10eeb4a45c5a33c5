package routing

import "github.com/dgallion1/notesgest/internal/materials"

// defaultEntries is the course-note set the tool was built for.
var defaultEntries = map[string]Target{
	"A1词汇.pdf": {materials.LevelA1, materials.CategoryVocabulary},
	"A2词汇.pdf": {materials.LevelA2, materials.CategoryVocabulary},
	"B1词汇.pdf": {materials.LevelB1, materials.CategoryVocabulary},
	"B2词汇.pdf": {materials.LevelB2, materials.CategoryVocabulary},

	"A1语法讲义.pdf":  {materials.LevelA1, materials.CategoryGrammar},
	"A2语法讲义.pdf":  {materials.LevelA2, materials.CategoryGrammar},
	"B级别语法讲义.pdf": {materials.LevelB, materials.CategoryGrammar},

	"A1课文讲义.pdf": {materials.LevelA1, materials.CategoryReading},
	"A2课文讲义.pdf": {materials.LevelA2, materials.CategoryReading},
	"B1课文讲义.pdf": {materials.LevelB1, materials.CategoryReading},
	"B2课文讲义.pdf": {materials.LevelB2, materials.CategoryReading},

	"A1文化讲义.pdf": {materials.LevelA1, materials.CategoryOthers},
	"A2文化讲义.pdf": {materials.LevelA2, materials.CategoryOthers},
	"B1文化.pdf":   {materials.LevelB1, materials.CategoryOthers},
	"B2文化.pdf":   {materials.LevelB2, materials.CategoryOthers},

	"A1 情景对话讲义.pdf": {materials.LevelA1, materials.CategoryOthers},
	"A2 情景对话讲义.pdf": {materials.LevelA2, materials.CategoryOthers},
	"B1情景对话讲义.pdf":  {materials.LevelB1, materials.CategoryOthers},
	"B2情景对话.pdf":    {materials.LevelB2, materials.CategoryOthers},
}

// DefaultTable returns the built-in routing table.
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic("routing: invalid built-in table: " + err.Error())
	}
	return t
}
