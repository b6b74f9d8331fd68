package research

import "fmt"

// TemplateQueries builds the base search queries for a candidate. Known
// profile usernames are queried directly; otherwise queries lean on the most
// recent company or school to disambiguate common names.
func TemplateQueries(fp *Fingerprint) []string {
	var queries []string

	if github := fp.Identifier("github"); github != "" {
		queries = append(queries, fmt.Sprintf("github.com/%s", github))
	} else {
		githubQuery := fp.Name
		if len(fp.Companies) > 0 && len(fp.Schools) > 0 {
			githubQuery += fmt.Sprintf(" %s %s github", fp.Companies[0], fp.Schools[0])
		} else {
			githubQuery += " github profile"
		}
		queries = append(queries, githubQuery)
	}

	if linkedin := fp.Identifier("linkedin"); linkedin != "" {
		queries = append(queries, fmt.Sprintf("linkedin.com/in/%s", linkedin))
	} else {
		linkedinQuery := fp.Name
		if len(fp.Companies) > 0 {
			linkedinQuery += fmt.Sprintf(" %s linkedin", fp.Companies[0])
		} else {
			linkedinQuery += " linkedin profile"
		}
		queries = append(queries, linkedinQuery)
	}

	disambig := ""
	if len(fp.Companies) > 0 {
		disambig = " " + fp.Companies[0]
	} else if len(fp.Schools) > 0 {
		disambig = " " + fp.Schools[0]
	}

	queries = append(queries,
		fmt.Sprintf("%s%s blog post article", fp.Name, disambig),
		fmt.Sprintf("%s%s conference talk presentation", fp.Name, disambig),
		fmt.Sprintf("%s%s research paper publication", fp.Name, disambig),
	)

	// Project queries for the two strongest skills
	skills := fp.Skills
	if len(skills) > 2 {
		skills = skills[:2]
	}
	for _, skill := range skills {
		queries = append(queries, fmt.Sprintf("%s%s %s project", fp.Name, disambig, skill))
	}

	return queries
}

// MergeQueries combines template and generated queries, dropping duplicates
// while preserving order.
func MergeQueries(groups ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, group := range groups {
		for _, q := range group {
			if q == "" || seen[q] {
				continue
			}
			seen[q] = true
			merged = append(merged, q)
		}
	}
	return merged
}
