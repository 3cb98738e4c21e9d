// Package command provides the command registry, parser, and built-in
// command definitions for the terminal shell.
package command

// Categories for organizing commands.
const (
	CategoryAction = "action"
	CategorySystem = "system"
)

// Handler identifiers mapping commands to session handlers.
const (
	HandlerShootSelf     = "shoot_self"
	HandlerShootOpponent = "shoot_opponent"
	HandlerUse           = "use"
	HandlerStatus        = "status"
	HandlerInventory     = "inventory"
	HandlerHelp          = "help"
	HandlerQuit          = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command.
	Category string
	// Handler names the session handler that executes the command.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
//
// Postcondition: Returns a non-empty slice of commands with unique names and aliases.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "me", Aliases: []string{"self"}, Help: "Shoot yourself", Category: CategoryAction, Handler: HandlerShootSelf},
		{Name: "you", Aliases: []string{"them", "shoot"}, Help: "Shoot your opponent", Category: CategoryAction, Handler: HandlerShootOpponent},
		{Name: "use", Aliases: []string{"u"}, Help: "Use an item: use <saw|magnifier|beer|handcuffs|cigarette>", Category: CategoryAction, Handler: HandlerUse},
		{Name: "status", Aliases: []string{"st"}, Help: "Show lives and shells", Category: CategorySystem, Handler: HandlerStatus},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show your items", Category: CategorySystem, Handler: HandlerInventory},
		{Name: "help", Aliases: []string{"?"}, Help: "Show this list", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the table", Category: CategorySystem, Handler: HandlerQuit},
	}
}
