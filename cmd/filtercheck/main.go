// Command filtercheck parses a filter expression and prints its syntax tree
// or the backend query parameters it translates to. The expression is taken
// from the command line arguments, or from stdin when none are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	filterexpr "github.com/querykit/go-filterexpr"
)

func main() {
	params := flag.Bool("params", false, "print backend query parameters instead of the syntax tree")
	query := flag.Bool("query", false, "print a single URL-escaped query-string fragment")
	flag.Parse()

	input := strings.Join(flag.Args(), " ")
	if input == "" {
		// Fall back to stdin so expressions can be piped in.
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatal("Failed to read stdin:", err)
		}
		input = strings.Join(lines, "\n")
	}

	groups, err := filterexpr.Parse(input)
	if err != nil {
		log.Fatal("Failed to parse filter: ", err)
	}

	switch {
	case *query:
		fragment, err := filterexpr.QueryString(groups)
		if err != nil {
			log.Fatal("Failed to build query string: ", err)
		}
		fmt.Println(fragment)
	case *params:
		pairs, err := filterexpr.QueryParams(groups)
		if err != nil {
			log.Fatal("Failed to build query parameters: ", err)
		}
		for _, p := range pairs {
			fmt.Printf("%s=%s\n", p.Key, p.Value)
		}
	default:
		printGroups(groups, 0)
	}
}

func printGroups(groups filterexpr.ExprGroups, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, group := range groups {
		switch item := group.Item.(type) {
		case filterexpr.Expr:
			fmt.Printf("%s%s %s %s %s\n", indent, group.Join, item.Left.Literal, item.Op, item.Right.Literal)
		case filterexpr.ExprGroups:
			fmt.Printf("%s%s (\n", indent, group.Join)
			printGroups(item, depth+1)
			fmt.Printf("%s)\n", indent)
		}
	}
}
