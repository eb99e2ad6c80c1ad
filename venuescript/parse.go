package venuescript

import "strings"

// Parse tokenizes, parses, and validates a venue script, returning the
// typed AST or the first ScriptError encountered.
func Parse(script string) (*Script, error) {
	parsed, err := parseImpl(script)
	if err != nil {
		return nil, err
	}
	if err := Validate(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

type blockKind int

const (
	blockNone blockKind = iota
	blockRouter
	blockSlab
	blockOracle
)

func parseImpl(script string) (*Script, error) {
	var router *RouterBlock
	var slabs []SlabBlock
	var oracles []OracleBlock

	kind := blockNone
	var curRouter *routerBuilder
	var curSlab *slabBuilder
	var curOracle *oracleBuilder

	for idx, raw := range splitLines(script) {
		lineNo := idx + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens := tokenize(trimmed)
		if len(tokens) == 0 {
			continue
		}

		if len(tokens) == 1 && tokens[0] == "}" {
			if kind == blockNone {
				return nil, errUnexpectedToken(lineNo, "}")
			}
			switch kind {
			case blockRouter:
				if router != nil {
					return nil, errDuplicateRouter(lineNo)
				}
				block, err := curRouter.finish(lineNo)
				if err != nil {
					return nil, err
				}
				router = &block
			case blockSlab:
				block, err := curSlab.finish(lineNo)
				if err != nil {
					return nil, err
				}
				slabs = append(slabs, block)
			case blockOracle:
				block, err := curOracle.finish(lineNo)
				if err != nil {
					return nil, err
				}
				oracles = append(oracles, block)
			}
			kind = blockNone
			curRouter, curSlab, curOracle = nil, nil, nil
			continue
		}

		if kind == blockNone {
			if tokens[len(tokens)-1] != "{" {
				return nil, errSyntax(lineNo, "expected block opening")
			}
			head := tokens[:len(tokens)-1]
			if len(head) == 0 {
				return nil, errSyntax(lineNo, "missing block identifier")
			}
			switch head[0] {
			case "ROUTER":
				name := "ROUTER"
				if len(head) > 1 {
					name = head[1]
				}
				kind = blockRouter
				curRouter = newRouterBuilder(name)
			case "SLAB":
				if len(head) != 2 {
					return nil, errSyntax(lineNo, "SLAB requires a quoted name")
				}
				kind = blockSlab
				curSlab = newSlabBuilder(head[1])
			case "ORACLE":
				if len(head) != 2 {
					return nil, errSyntax(lineNo, "ORACLE requires a quoted name")
				}
				kind = blockOracle
				curOracle = newOracleBuilder(head[1])
			default:
				err := errSyntax(lineNo, "unknown block '"+head[0]+"'")
				err.Suggestion = suggest(head[0], blockKeywords)
				return nil, err
			}
			continue
		}

		switch kind {
		case blockRouter:
			if err := curRouter.apply(tokens, lineNo); err != nil {
				return nil, err
			}
		case blockSlab:
			if err := curSlab.apply(tokens, lineNo); err != nil {
				return nil, err
			}
		case blockOracle:
			if err := curOracle.apply(tokens, lineNo); err != nil {
				return nil, err
			}
		}
	}

	if kind != blockNone {
		return nil, errMissingBlockTerminator()
	}
	if router == nil {
		return nil, errMissingRouter()
	}

	return &Script{Router: *router, Slabs: slabs, Oracles: oracles}, nil
}
