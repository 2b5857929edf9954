package filesystem

import "strings"

// language describes how source in one language is stored on disk.
type language struct {
	ext    string
	leader string
}

var fallbackLanguage = language{ext: "txt", leader: "//"}

var languages = map[string]language{
	"python3":    {ext: "py", leader: "#"},
	"python":     {ext: "py", leader: "#"},
	"cpp":        {ext: "cpp", leader: "//"},
	"c++":        {ext: "cpp", leader: "//"},
	"java":       {ext: "java", leader: "//"},
	"javascript": {ext: "js", leader: "//"},
	"js":         {ext: "js", leader: "//"},
	"typescript": {ext: "ts", leader: "//"},
	"c":          {ext: "c", leader: "//"},
	"c#":         {ext: "cs", leader: "//"},
	"csharp":     {ext: "cs", leader: "//"},
	"ruby":       {ext: "rb", leader: "#"},
	"swift":      {ext: "swift", leader: "//"},
	"go":         {ext: "go", leader: "//"},
	"golang":     {ext: "go", leader: "//"},
	"kotlin":     {ext: "kt", leader: "//"},
	"scala":      {ext: "scala", leader: "//"},
	"rust":       {ext: "rs", leader: "//"},
	"php":        {ext: "php", leader: "//"},
	"dart":       {ext: "dart", leader: "//"},
	"bash":       {ext: "sh", leader: "#"},
	"mysql":      {ext: "sql", leader: "--"},
	"mssql":      {ext: "sql", leader: "--"},
	"oraclesql":  {ext: "sql", leader: "--"},
	"postgresql": {ext: "sql", leader: "--"},
}

func lookupLanguage(lang string) language {
	if l, ok := languages[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return l
	}
	return fallbackLanguage
}
