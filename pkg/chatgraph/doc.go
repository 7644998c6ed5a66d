/*
Package chatgraph provides graph-based orchestration for LLM chat workflows.

# Overview

chatgraph is a Go library for building and executing directed graphs
where nodes perform work and edges define flow. It was built to drive
chat-style pipelines (classify a message, route it, generate a reply)
but the engine is generic over any state type.

The library is inspired by LangGraph but built for Go with:
  - Type-safe generics for state management
  - Compile-time validation of graph structure
  - Strictly sequential execution, one node at a time
  - Crash recovery via checkpointing
  - OpenTelemetry integration for observability

# Basic Usage

Create a graph with nodes and edges, then compile and run:

	type State struct {
	    Input  string
	    Output string
	}

	func respond(ctx chatgraph.Context, s State) (State, error) {
	    s.Output = "Reply to: " + s.Input
	    return s, nil
	}

	func main() {
	    graph := chatgraph.NewGraph[State]().
	        AddNode("respond", respond).
	        AddEdge("respond", chatgraph.END).
	        SetEntry("respond")

	    compiled, err := graph.Compile()
	    if err != nil {
	        log.Fatal(err)
	    }

	    ctx := chatgraph.NewContext(context.Background())
	    result, err := compiled.Run(ctx, State{Input: "hello"})
	    if err != nil {
	        log.Fatal(err)
	    }
	    fmt.Println(result.Output)
	}

# Conditional Branching

Use conditional edges for decision points:

	graph.AddConditionalEdge("classify", func(ctx chatgraph.Context, s State) string {
	    switch s.Intent {
	    case "joke":
	        return "joke_teller"
	    default:
	        return "fallback"
	    }
	})

The router function returns the ID of the next node to execute.
Invalid return values (referencing non-existent nodes) cause runtime errors.

# Checkpointing

Enable crash recovery with checkpointing:

	store, err := checkpoint.NewSQLiteStore("./checkpoints.db")
	defer store.Close()

	result, err := compiled.Run(ctx, state,
	    chatgraph.WithCheckpointing(store),
	    chatgraph.WithRunID("run-123"))

	// Resume after crash
	result, err = compiled.Resume(ctx, store, "run-123")

Checkpoints are saved after each successful node execution.
When resuming, execution continues from the node after the last checkpoint.

# LLM Integration

Configure an llm.Client on the context and access it in nodes:

	client := llm.NewOpenAIClient(apiKey)
	ctx := chatgraph.NewContext(context.Background(),
	    chatgraph.WithLLM(client))

	func respond(ctx chatgraph.Context, s State) (State, error) {
	    resp, err := ctx.LLM().Complete(ctx, llm.CompletionRequest{
	        Messages: []llm.Message{{Role: llm.RoleUser, Content: s.Input}},
	    })
	    if err != nil {
	        return s, err
	    }
	    s.Output = resp.Content
	    return s, nil
	}

The chat subpackage builds on this to provide a complete intent-routed
chatbot; see package chat.

# Observability

Enable logging, metrics, and tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	result, err := compiled.Run(ctx, state,
	    chatgraph.WithObservabilityLogger(logger),
	    chatgraph.WithMetrics(true),
	    chatgraph.WithTracing(true),
	    chatgraph.WithRunID("run-123"))

Logs include structured fields: run_id, node_id, duration_ms, attempt.
OpenTelemetry metrics: chatgraph.node.executions, chatgraph.node.latency_ms, etc.
OpenTelemetry tracing: chatgraph.run > chatgraph.node.{id} spans.

# Error Handling

Errors include context about which node failed:

	result, err := compiled.Run(ctx, state)
	var nodeErr *chatgraph.NodeError
	if errors.As(err, &nodeErr) {
	    log.Printf("Node %s failed: %v", nodeErr.NodeID, nodeErr.Err)
	}

Panics in nodes are recovered and converted to PanicError with stack trace.

# Thread Safety

  - Graph[S] is NOT safe for concurrent use during construction
  - CompiledGraph[S] IS safe for concurrent use (immutable)
  - Context IS safe for concurrent use
  - CheckpointStore implementations are safe for concurrent use

# Subpackages

  - chat: intent-routed chatbot built on the engine
  - checkpoint: checkpoint storage (memory, SQLite)
  - llm: LLM client interface and implementations
  - observability: logging, metrics, and tracing helpers
  - config: file-backed configuration with typed accessors
*/
package chatgraph
