package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"dayplanner/agent"
	"dayplanner/agent/tools/builtin"
	"dayplanner/weather"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
)

// Tomorrow.io's free tier allows short bursts but not sustained traffic.
const (
	weatherRPS   = 1.0
	weatherBurst = 3

	// toolWorkers bounds concurrent tool executions across all agents.
	toolWorkers = 4
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := agent.LoadConfig(".")
	if err != nil {
		log.Fatalf("load agent config: %v", err)
	}
	if cfg.APIKey == "" {
		log.Fatal("missing API key; set AGENT_API_KEY or agent.yaml")
	}

	weatherCfg, err := weather.LoadConfig(".")
	if err != nil {
		log.Fatalf("load weather config: %v", err)
	}
	weatherClient, err := weather.NewClient(*weatherCfg)
	if err != nil {
		log.Fatalf("weather client: %v", err)
	}
	forecasts := weather.NewService(weather.NewRateLimitedFetcher(weatherClient, weatherRPS, weatherBurst))

	supervisor, cleanup, err := buildAgents(*cfg, forecasts)
	if err != nil {
		log.Fatalf("build agents: %v", err)
	}
	defer cleanup()

	fmt.Println("Home day-planning assistant. Type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}
		reply, err := supervisor.Invoke(context.Background(), text)
		if err != nil {
			log.Printf("agent error: %v", err)
			continue
		}
		fmt.Printf("Agent> %s\n", reply)
		supervisor.AddMemory(reply)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("input error: %v", err)
	}
}

// buildAgents wires the day planner and researcher under a supervisor that
// delegates to them as tools. All three share one tool worker pool; the
// returned cleanup releases it.
func buildAgents(cfg agent.Config, forecasts *weather.Service) (*agent.Agent, func(), error) {
	pool, err := ants.NewPool(toolWorkers)
	if err != nil {
		return nil, nil, fmt.Errorf("tool worker pool: %w", err)
	}

	planner, err := agent.New(cfg, agent.WithToolPool(pool))
	if err != nil {
		pool.Release()
		return nil, nil, err
	}
	planner.SetName("day_planner")
	planner.SetDescription("Helps users plan their day with weather insights.")
	planner.SetSystemPrompt(dayPlannerInstruction)
	planner.RegisterTool(builtin.NewWeatherSummaryTool(forecasts))
	planner.RegisterTool(builtin.NewCurrentTimeTool())

	researcher, err := agent.New(cfg, agent.WithToolPool(pool))
	if err != nil {
		pool.Release()
		return nil, nil, err
	}
	researcher.SetName("researcher")
	researcher.SetDescription("Answers factual questions with web search.")
	researcher.SetSystemPrompt(researchInstruction)
	researcher.RegisterTool(builtin.NewWebSearchTool())

	supervisor, err := agent.New(cfg, agent.WithToolPool(pool))
	if err != nil {
		pool.Release()
		return nil, nil, err
	}
	supervisor.SetName("supervisor")
	supervisor.SetDescription("Delegates queries to specialized agents.")
	supervisor.SetSystemPrompt(supervisorInstruction)
	supervisor.RegisterTool(agent.AgentTool(
		"day_planner",
		"Plan the user's day around today's weather. Delegates to the day planner agent.",
		planner,
	))
	supervisor.RegisterTool(agent.AgentTool(
		"researcher",
		"Answer general factual or research questions. Delegates to the research agent.",
		researcher,
	))
	return supervisor, pool.Release, nil
}
