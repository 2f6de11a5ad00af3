package course

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Range limits keep a typo like "5-99999" from building a huge set.
const (
	MinSetNumber = 0
	MaxSetNumber = 999
)

// Set is a set of checkpoint numbers.
type Set map[int]struct{}

func (s Set) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// ParseSet parses a list of numbers and inclusive ranges, e.g.
// "0,2-5,177-193". The empty string is the empty set.
func ParseSet(str string) (Set, error) {
	set := Set{}
	if strings.TrimSpace(str) == "" {
		return set, nil
	}
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if lowStr, highStr, isRange := strings.Cut(part, "-"); isRange {
			low, err := strconv.Atoi(strings.TrimSpace(lowStr))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
			high, err := strconv.Atoi(strings.TrimSpace(highStr))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
			low = max(low, MinSetNumber)
			high = min(high, MaxSetNumber)
			for n := low; n <= high; n++ {
				set[n] = struct{}{}
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid checkpoint number %q", part)
		}
		set[n] = struct{}{}
	}
	return set, nil
}

// String formats the set back into ranges.
func (s Set) String() string {
	nums := lo.Keys(s)
	sort.Ints(nums)
	var parts []string
	for i := 0; i < len(nums); {
		j := i
		for j+1 < len(nums) && nums[j+1] == nums[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(nums[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", nums[i], nums[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
