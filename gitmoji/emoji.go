package gitmoji

// EmojiSet is an ordered list of distinct emoji literals accepted as commit
// message prefixes.
type EmojiSet []string

// DefaultEmojis is the built-in GitMoji catalog (https://gitmoji.dev/).
// Several entries carry a variation selector (U+FE0F); matching is done on
// the exact literal, so the selector is part of the accepted prefix.
var DefaultEmojis = EmojiSet{
	"🎨", // Improve structure / format of the code
	"⚡️", // Improve performance
	"🔥", // Remove code or files
	"🐛", // Fix a bug
	"🚑️", // Critical hotfix
	"✨", // Introduce new features
	"📝", // Add or update documentation
	"🚀", // Deploy stuff
	"💄", // Add or update the UI and style files
	"🎉", // Begin a project
	"✅", // Add, update, or pass tests
	"🔒️", // Fix security or privacy issues
	"🔐", // Add or update secrets
	"🔖", // Release / Version tags
	"🚨", // Fix compiler / linter warnings
	"🚧", // Work in progress
	"💚", // Fix CI Build
	"⬇️", // Downgrade dependencies
	"⬆️", // Upgrade dependencies
	"📌", // Pin dependencies to specific versions
	"👷", // Add or update CI build system
	"📈", // Add or update analytics or track code
	"♻️", // Refactor code
	"➕", // Add a dependency
	"➖", // Remove a dependency
	"🔧", // Add or update configuration files
	"🔨", // Add or update development scripts
	"🌐", // Internationalization and localization
	"✏️", // Fix typos
	"💩", // Write bad code that needs to be improved
	"⏪️", // Revert changes
	"🔀", // Merge branches
	"📦️", // Add or update compiled files or packages
	"👽️", // Update code due to external API changes
	"🚚", // Move or rename resources
	"📄", // Add or update license
	"💥", // Introduce breaking changes
	"🍱", // Add or update assets
	"♿️", // Improve accessibility
	"💡", // Add or update comments in source code
	"🍻", // Write code drunkenly
	"💬", // Add or update text and literals
	"🗃️", // Perform database related changes
	"🔊", // Add or update logs
	"🔇", // Remove logs
	"👥", // Add or update contributor(s)
	"🚸", // Improve user experience / usability
	"🏗️", // Make architectural changes
	"📱", // Work on responsive design
	"🤡", // Mock things
	"🥚", // Add or update an easter egg
	"🙈", // Add or update a .gitignore file
	"📸", // Add or update snapshots
	"⚗️", // Perform experiments
	"🔍️", // Improve SEO
	"🏷️", // Add or update types
	"🌱", // Add or update seed files
	"🚩", // Add, update, or remove feature flags
	"🥅", // Catch errors
	"💫", // Add or update animations and transitions
	"🗑️", // Deprecate code that needs to be cleaned up
	"🛂", // Work on code related to authorization, roles and permissions
	"🩹", // Simple fix for a non-critical issue
	"🧐", // Data exploration/inspection
	"⚰️", // Remove dead code
	"🧪", // Add a failing test
	"👔", // Add or update business logic
	"🩺", // Add or update healthcheck
	"🧱", // Infrastructure related changes
	"🧑‍💻", // Improve developer experience
	"💸", // Add sponsorships or money related infrastructure
	"🧵", // Add or update code related to multithreading or concurrency
	"🦺", // Add or update code related to validation
	"✈️", // Improve offline support
}

// ResolveEmojiSet combines the built-in catalog with caller-supplied extras.
// Extras are appended in order after the defaults and duplicates are dropped,
// keeping the first occurrence. Extras are accepted verbatim, there is no
// check against the official catalog.
func ResolveEmojiSet(extras []string) EmojiSet {
	set := make(EmojiSet, 0, len(DefaultEmojis)+len(extras))
	seen := make(map[string]struct{}, len(DefaultEmojis)+len(extras))

	for _, emoji := range DefaultEmojis {
		if _, ok := seen[emoji]; ok {
			continue
		}

		seen[emoji] = struct{}{}
		set = append(set, emoji)
	}

	for _, emoji := range extras {
		if _, ok := seen[emoji]; ok {
			continue
		}

		seen[emoji] = struct{}{}
		set = append(set, emoji)
	}

	return set
}
