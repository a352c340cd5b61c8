package domain

// Kind identifies which todo operation a Command performs.
type Kind int

const (
	KindList Kind = iota + 1
	KindCreate
	KindRead
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindCreate:
		return "create"
	case KindRead:
		return "read"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Command is a single todo operation parsed from the command line.
// Only the fields relevant to Kind are set.
type Command struct {
	Kind      Kind
	ID        int64
	Body      string
	Completed bool
}

func List() Command              { return Command{Kind: KindList} }
func Create(body string) Command { return Command{Kind: KindCreate, Body: body} }
func Read(id int64) Command      { return Command{Kind: KindRead, ID: id} }
func Delete(id int64) Command    { return Command{Kind: KindDelete, ID: id} }
func Update(id int64, body string, completed bool) Command {
	return Command{Kind: KindUpdate, ID: id, Body: body, Completed: completed}
}

// CreateTodo is the payload for creating a todo.
type CreateTodo struct {
	Body string `json:"body"`
}

// UpdateTodo is the payload for replacing a todo.
type UpdateTodo struct {
	Body      string `json:"body"`
	Completed bool   `json:"completed"`
}
