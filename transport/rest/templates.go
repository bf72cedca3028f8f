package rest

import "html/template"

// The page is purely presentational: it renders snapshots it gets from the
// API and the websocket, and translates clicks into cell indices. All game
// decisions stay on the server.
func loadPageTemplate() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tic Tac Toe</title>
<style>
  body {
    font-family: system-ui, sans-serif;
    display: flex;
    flex-direction: column;
    align-items: center;
    margin: 0;
    min-height: 100vh;
    background: #f4f4f8;
  }
  h1 { margin: 1rem 0 0.5rem; }
  #status { min-height: 1.5rem; margin-bottom: 1rem; font-size: 1.2rem; }
  #board {
    display: grid;
    grid-template-columns: repeat(3, 1fr);
    gap: 6px;
    width: min(80vw, 60vh, 420px);
  }
  .cell {
    aspect-ratio: 1;
    font-size: clamp(2rem, 10vmin, 4rem);
    border: none;
    border-radius: 8px;
    background: #fff;
    box-shadow: 0 1px 3px rgba(0,0,0,0.2);
    cursor: pointer;
  }
  .cell:disabled { cursor: default; }
  .cell.win {
    background: #b6f0c0;
    animation: pulse 0.6s ease-in-out 3;
  }
  @keyframes pulse {
    50% { transform: scale(1.08); }
  }
  #reset {
    margin: 1.5rem 0;
    padding: 0.6rem 2rem;
    font-size: 1rem;
    border: none;
    border-radius: 8px;
    background: #4a6cf7;
    color: #fff;
    cursor: pointer;
  }
  footer { margin-top: auto; padding: 1rem; color: #888; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>Tic Tac Toe</h1>
<div id="status"></div>
<div id="board"></div>
<button id="reset">New game</button>
<footer>&copy; 2025 Tic Tac Toe</footer>
<script>
const board = document.getElementById('board');
const statusLine = document.getElementById('status');
const cells = [];

for (let i = 0; i < 9; i++) {
  const cell = document.createElement('button');
  cell.className = 'cell';
  cell.setAttribute('aria-label', 'cell ' + i);
  cell.addEventListener('click', () => makeTurn(i));
  board.appendChild(cell);
  cells.push(cell);
}

function render(game) {
  const combo = game.win_combo || [];
  for (let i = 0; i < 9; i++) {
    cells[i].textContent = game.board[i];
    cells[i].disabled = game.status !== 'ongoing' || game.board[i] !== '';
    cells[i].classList.toggle('win', combo.includes(i));
  }
  if (game.status === 'won') {
    statusLine.textContent = game.winner + ' wins!';
  } else if (game.status === 'draw') {
    statusLine.textContent = "It's a draw";
  } else {
    statusLine.textContent = game.player_turn + "'s turn";
  }
}

async function fetchGame() {
  const resp = await fetch('/api/game');
  const data = await resp.json();
  if (data.game) render(data.game);
}

async function makeTurn(cell) {
  const resp = await fetch('/api/game/turn', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({cell: cell}),
  });
  const data = await resp.json();
  if (data.game) render(data.game);
}

document.getElementById('reset').addEventListener('click', async () => {
  const resp = await fetch('/api/game/reset', {method: 'POST'});
  const data = await resp.json();
  if (data.game) render(data.game);
});

function connect() {
  const proto = location.protocol === 'https:' ? 'wss' : 'ws';
  const ws = new WebSocket(proto + '://' + location.hostname + ':{{.SocketPort}}/ws');
  ws.onmessage = (ev) => render(JSON.parse(ev.data));
  ws.onclose = () => setTimeout(connect, 2000);
}

fetchGame().then(connect);
</script>
</body>
</html>
`
