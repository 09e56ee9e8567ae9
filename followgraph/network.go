package followgraph

import (
	"log/slog"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

var seedNames = []string{"Foo", "Bar", "Baz"}

// Network is a fixed-capacity collection of uniquely named users. It is not
// safe for concurrent use.
type Network struct {
	users        []*User
	maxUsers     int
	maxFollowees int
	index        *lru.Cache[string, *User]
	logger       *slog.Logger
}

// NetworkArgs configures a Network. A MaxFollowees of zero or less means
// DefaultMaxFollowees.
type NetworkArgs struct {
	Logger       *slog.Logger
	MaxUsers     int
	MaxFollowees int
}

func New(args NetworkArgs) *Network {
	if args.Logger == nil {
		args.Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if args.MaxUsers < 0 {
		args.MaxUsers = 0
	}
	if args.MaxFollowees <= 0 {
		args.MaxFollowees = DefaultMaxFollowees
	}

	// lru rejects a zero size; an empty network never stores anything anyway
	idx, _ := lru.New[string, *User](max(args.MaxUsers, 1))

	return &Network{
		maxUsers:     args.MaxUsers,
		maxFollowees: args.MaxFollowees,
		index:        idx,
		logger:       args.Logger,
	}
}

func NewNetwork(maxUsers int) *Network {
	return New(NetworkArgs{MaxUsers: maxUsers})
}

// NewSeededNetwork returns a network that already holds Foo, Bar and Baz with
// no followees. Seed users that do not fit in maxUsers are skipped.
func NewSeededNetwork(maxUsers int) *Network {
	n := NewNetwork(maxUsers)
	n.Seed()
	return n
}

// Seed adds Foo, Bar and Baz, skipping any that exist or do not fit.
func (n *Network) Seed() {
	for _, name := range seedNames {
		n.AddUser(name)
	}
}

func (n *Network) UserCount() int {
	return len(n.users)
}

func (n *Network) MaxUsers() int {
	return n.maxUsers
}

// Users returns the users in storage order.
func (n *Network) Users() []*User {
	out := make([]*User, len(n.users))
	copy(out, n.users)
	return out
}

// GetUser returns the user with the given name, or nil.
func (n *Network) GetUser(name string) *User {
	if name == "" {
		return nil
	}

	if u, ok := n.index.Get(name); ok {
		return u
	}

	for _, u := range n.users {
		if u.name == name {
			n.index.Add(name, u)
			return u
		}
	}
	return nil
}

func (n *Network) AddUser(name string) bool {
	if name == "" {
		n.logger.Debug("add user rejected", "reason", "empty name")
		return false
	}
	if len(n.users) >= n.maxUsers {
		n.logger.Debug("add user rejected", "name", name, "reason", "network full")
		return false
	}
	if n.GetUser(name) != nil {
		n.logger.Debug("add user rejected", "name", name, "reason", "already exists")
		return false
	}

	u := NewUserWithCapacity(name, n.maxFollowees)
	n.users = append(n.users, u)
	n.index.Add(name, u)
	return true
}

// AddFollowee makes name1 follow name2. Both must be users of the network and
// a user may not follow itself.
func (n *Network) AddFollowee(name1, name2 string) bool {
	u1, ok := n.resolvePair("follow", name1, name2, false)
	if !ok {
		return false
	}

	if !u1.AddFollowee(name2) {
		n.logger.Debug("follow rejected", "follower", name1, "followee", name2, "reason", "already followed or list full")
		return false
	}
	return true
}

func (n *Network) RemoveFollowee(name1, name2 string) bool {
	u1, ok := n.resolvePair("unfollow", name1, name2, true)
	if !ok {
		return false
	}
	return u1.RemoveFollowee(name2)
}

// resolvePair looks up the follower of a name1 -> name2 edge. Self edges are
// rejected unless allowSelf is set.
func (n *Network) resolvePair(op, name1, name2 string, allowSelf bool) (*User, bool) {
	if name1 == "" || name2 == "" {
		n.logger.Debug(op+" rejected", "reason", "empty name")
		return nil, false
	}

	u1 := n.GetUser(name1)
	u2 := n.GetUser(name2)
	if u1 == nil || u2 == nil {
		n.logger.Debug(op+" rejected", "follower", name1, "followee", name2, "reason", "unknown user")
		return nil, false
	}

	if name1 == name2 && !allowSelf {
		n.logger.Debug(op+" rejected", "name", name1, "reason", "self follow")
		return nil, false
	}

	return u1, true
}

// CountMutual is User.CountMutual by name. ok is false if either user is unknown.
func (n *Network) CountMutual(name1, name2 string) (int, bool) {
	u1 := n.GetUser(name1)
	u2 := n.GetUser(name2)
	if u1 == nil || u2 == nil {
		return 0, false
	}
	return u1.CountMutual(u2), true
}

func (n *Network) AreFriends(name1, name2 string) bool {
	u1 := n.GetUser(name1)
	if u1 == nil {
		return false
	}
	return u1.IsFriendOf(n.GetUser(name2))
}

func (n *Network) String() string {
	if len(n.users) == 0 {
		return "Network:"
	}

	lines := make([]string, 0, len(n.users))
	for _, u := range n.users {
		lines = append(lines, u.String())
	}
	return "Network:\n" + strings.Join(lines, "\n")
}
