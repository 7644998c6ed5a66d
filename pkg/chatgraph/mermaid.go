package chatgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Mermaid renders the graph topology as Mermaid flowchart text.
// The output can be pasted at https://mermaid.live or embedded in Markdown
// for human inspection. It has no effect on runtime behavior.
//
// Conditional edges are rendered as dotted arrows to every node, since
// their actual targets are determined at runtime by the router.
func (cg *CompiledGraph[S]) Mermaid() string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	b.WriteString("\t__start__([start])\n")
	b.WriteString("\t__end__([end])\n")

	ids := cg.NodeIDs()
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "\t%s[%s]\n", id, id)
	}

	fmt.Fprintf(&b, "\t__start__ --> %s\n", cg.entryPoint)

	for _, from := range ids {
		targets := make([]string, len(cg.edges[from]))
		copy(targets, cg.edges[from])
		sort.Strings(targets)
		for _, to := range targets {
			fmt.Fprintf(&b, "\t%s --> %s\n", from, to)
		}

		if cg.isConditional[from] {
			for _, to := range ids {
				if to == from {
					continue
				}
				fmt.Fprintf(&b, "\t%s -.-> %s\n", from, to)
			}
			fmt.Fprintf(&b, "\t%s -.-> %s\n", from, END)
		}
	}

	return b.String()
}
