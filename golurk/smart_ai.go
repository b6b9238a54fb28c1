package golurk

// BestAiAction determines the best action for the given player. Failsafes to a random usable move,
// struggle when nothing is usable.
func BestAiAction(gameState *GameState, playerID int) Action {
	aiPlayer, opposingPlayer := getPlayerPair(gameState, playerID)
	aiPokemon := aiPlayer.GetActivePokemon()

	if !aiPokemon.Alive() {
		// Switch on death
		switches := aiPlayer.AvailableSwitches()
		if len(switches) > 0 {
			return NewSwitchAction(gameState, playerID, switches[0])
		}

		return NewSkipAction(playerID)
	}

	usable := aiPlayer.AvailableMoves()
	if len(usable) == 0 {
		return NewAttackAction(playerID, -1)
	}

	bestMoveIndex := -1

	if aiPokemon.Speed(gameState.Weather) < opposingPlayer.GetActivePokemon().Speed(gameState.Weather) {
		bestMoveIndex = bestSlowingMove(gameState, playerID, usable)
	}

	if bestMoveIndex == -1 {
		bestMoveIndex = bestAttackingMove(gameState, playerID, usable)
	}

	if bestMoveIndex == -1 {
		// Randomly select a usable move if no best move available
		rngCopy := gameState.CreateNewRng()
		internalLogger.WithName("ai_move_selection").V(1).Info("no good move found, picking randomly", "pokemon_name", aiPokemon.Name())
		return NewAttackAction(playerID, usable[rngCopy.IntN(len(usable))])
	}

	return NewAttackAction(playerID, bestMoveIndex)
}

func bestAttackingMove(gameState *GameState, playerID int, usable []int) int {
	aiPlayer, opposingPlayer := getPlayerPair(gameState, playerID)
	aiPokemon := aiPlayer.GetActivePokemon()
	playerPokemon := opposingPlayer.GetActivePokemon()

	bestMoveIndex := -1
	var bestMoveDamage uint = 0

	for _, i := range usable {
		move := aiPokemon.Moves[i]

		// a copy so simulated rolls never touch the battle's rng; assume no crits
		rng := gameState.CreateNewRng()

		moveDamage := Damage(*aiPokemon, *playerPokemon, move, false, gameState.Weather, rng)
		if moveDamage > bestMoveDamage {
			bestMoveIndex = i
			bestMoveDamage = moveDamage
		}
	}

	return bestMoveIndex
}

func bestSlowingMove(gameState *GameState, playerID int, usable []int) int {
	aiPlayer, opposingPlayer := getPlayerPair(gameState, playerID)
	aiPokemon := aiPlayer.GetActivePokemon()
	playerPokemon := opposingPlayer.GetActivePokemon()

	bestSlowChance := 0
	bestMove := -1

	for _, i := range usable {
		move := aiPokemon.Moves[i]
		chance := 0

		for _, statChange := range move.StatChanges {
			// lowers the opponent's speed, or raises our own
			if statChange.StatName == STAT_SPEED && (statChange.Change < 0) != move.TargetsUserSide() {
				chance = move.Accuracy
				if chance == 0 {
					chance = 100
				}
			}
		}

		// we make sure the player's pokemon can be para'd
		typeImmune := playerPokemon.DefenseEffectiveness(GetAttackTypeMapping(move.Type)) == 0
		if move.Meta.Ailment.Name == "paralysis" && playerPokemon.Status == STATUS_NONE && !statusImmune(*playerPokemon, STATUS_PARA) && !typeImmune {
			chance = move.Meta.AilmentChance
			if chance == 0 {
				chance = move.Accuracy
			}
			if move.IsDamaging() {
				// damaging moves with a side chance are handled by bestAttackingMove
				chance = 0
			}
		}

		if chance > bestSlowChance {
			bestSlowChance = chance
			bestMove = i
		}
	}

	return bestMove
}
