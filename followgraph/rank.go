package followgraph

// RecommendWhoToFollow suggests the user sharing the most followees with name,
// skipping name itself and anyone name already follows. Ties go to the user
// stored first.
func (n *Network) RecommendWhoToFollow(name string) (string, bool) {
	me := n.GetUser(name)
	if me == nil {
		return "", false
	}

	bestMutual := -1
	bestName := ""
	for _, candidate := range n.users {
		if candidate.name == name || me.Follows(candidate.name) {
			continue
		}

		mutual := me.CountMutual(candidate)
		if mutual > bestMutual {
			bestMutual = mutual
			bestName = candidate.name
		}
	}

	if bestMutual < 0 {
		n.logger.Debug("no recommendation", "name", name)
		return "", false
	}
	return bestName, true
}

// MostPopularUser returns the user that appears in the most followee lists.
// A user's own list is counted too. Ties go to the user stored first.
func (n *Network) MostPopularUser() (string, bool) {
	if len(n.users) == 0 {
		return "", false
	}

	bestCount := -1
	bestName := ""
	for _, u := range n.users {
		count := n.popularity(u.name)
		if count > bestCount {
			bestCount = count
			bestName = u.name
		}
	}
	return bestName, true
}

// Followers returns, in storage order, the users whose followee list holds name.
func (n *Network) Followers(name string) []string {
	var followers []string
	if name == "" {
		return followers
	}
	for _, u := range n.users {
		if u.Follows(name) {
			followers = append(followers, u.name)
		}
	}
	return followers
}

func (n *Network) popularity(name string) int {
	count := 0
	for _, u := range n.users {
		if u.Follows(name) {
			count++
		}
	}
	return count
}
