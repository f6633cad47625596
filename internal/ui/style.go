package ui

// RenderStyle returns the stylesheet shared by every page.
func RenderStyle() string {
	return `
*{box-sizing:border-box;}
body{margin:0;background:#141414;color:#fff;font-family:"Helvetica Neue",Helvetica,Arial,sans-serif;font-size:14px;}
a{color:inherit;text-decoration:none;}
.nav{position:fixed;top:0;left:0;right:0;z-index:50;display:flex;justify-content:space-between;align-items:center;padding:16px 48px;background:linear-gradient(to bottom,rgba(0,0,0,.7),transparent);transition:background .3s;}
.nav.nav-solid{background:#141414;}
.nav-left,.nav-right{display:flex;align-items:center;gap:20px;}
.nav-brand{color:#e50914;font-size:26px;font-weight:bold;letter-spacing:1px;}
.nav-links a{margin-right:16px;color:#e5e5e5;font-size:14px;}
.nav-links a:hover{color:#b3b3b3;}
.nav-icon{font-size:18px;cursor:pointer;}
.nav-search{display:flex;align-items:center;gap:8px;background:rgba(0,0,0,.75);border:1px solid #fff;padding:4px 8px;}
.nav-search input{background:transparent;border:0;color:#fff;width:220px;font-size:14px;outline:none;}
.page{padding-bottom:48px;}
.hero{position:relative;height:80vh;min-height:420px;overflow:hidden;}
.hero-slide{position:absolute;inset:0;background-size:cover;background-position:center;opacity:0;transition:opacity 1s;}
.hero-slide.active{opacity:1;z-index:1;}
.hero-shade{position:absolute;inset:0;background:linear-gradient(to right,rgba(0,0,0,.8),transparent 60%),linear-gradient(to top,#141414,transparent 40%);}
.hero-body{position:absolute;left:48px;bottom:25%;max-width:560px;}
.hero-title{font-size:48px;margin:0 0 16px;}
.hero-overview{font-size:16px;line-height:1.4;color:#ddd;display:-webkit-box;-webkit-line-clamp:3;-webkit-box-orient:vertical;overflow:hidden;}
.hero-actions{display:flex;gap:12px;margin-top:20px;}
.btn{display:inline-block;padding:10px 24px;border-radius:4px;font-size:16px;font-weight:bold;}
.btn-play{background:#fff;color:#000;}
.btn-play:hover{background:rgba(255,255,255,.75);}
.btn-list{background:rgba(109,109,110,.7);color:#fff;}
.hero-dots{position:absolute;right:48px;bottom:25%;z-index:2;display:flex;gap:8px;}
.hero-dot{width:12px;height:12px;border-radius:50%;border:0;background:rgba(255,255,255,.4);cursor:pointer;}
.hero-dot.active{background:#fff;}
.rows{position:relative;z-index:3;margin-top:-120px;}
.row{margin:0 0 32px;padding:0 48px;}
.row-title{font-size:20px;margin:0 0 12px;}
.row-frame{position:relative;}
.row-track{display:flex;gap:8px;overflow-x:auto;scroll-behavior:smooth;scrollbar-width:none;}
.row-track::-webkit-scrollbar{display:none;}
.row-arrow{position:absolute;top:0;bottom:0;z-index:4;width:44px;border:0;background:rgba(20,20,20,.6);color:#fff;font-size:28px;cursor:pointer;}
.row-left{left:-48px;}
.row-right{right:-48px;}
.card{position:relative;flex:0 0 auto;width:240px;height:160px;border-radius:4px;background-size:cover;background-position:center;overflow:hidden;transition:transform .3s;}
.card-large{width:320px;height:320px;}
.card:hover{transform:scale(1.08);z-index:5;}
.card-shade{position:absolute;inset:0;background:linear-gradient(to top,rgba(0,0,0,.9),transparent 60%);opacity:0;transition:opacity .3s;}
.card-info{position:absolute;left:12px;right:12px;bottom:12px;opacity:0;transition:opacity .3s;}
.card:hover .card-shade,.card:hover .card-info{opacity:1;}
.card-title{font-size:15px;margin:0 0 8px;}
.card-actions{display:flex;gap:6px;}
.round{display:inline-flex;align-items:center;justify-content:center;width:32px;height:32px;border-radius:50%;border:2px solid rgba(255,255,255,.6);background:rgba(42,42,42,.6);color:#fff;font-size:14px;}
.round-light{background:#fff;color:#000;border-color:#fff;}
.overlay{min-height:100vh;padding:96px 48px 48px;background:rgba(0,0,0,.95);}
.overlay-head{display:flex;justify-content:space-between;align-items:center;}
.overlay-head h2{font-size:28px;margin:0;}
.overlay-query{color:#b3b3b3;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:16px;margin-top:24px;}
.grid .card{width:100%;}
.empty{color:#b3b3b3;font-size:16px;margin-top:32px;}
.player{position:fixed;inset:0;background:#000;}
.player-frame{width:100%;height:100%;border:0;}
.player-controls{position:absolute;inset:0;display:flex;flex-direction:column;justify-content:space-between;padding:32px 48px;background:linear-gradient(to bottom,rgba(0,0,0,.7),transparent 25%,transparent 75%,rgba(0,0,0,.7));transition:opacity .5s;pointer-events:none;}
.player-controls a{pointer-events:auto;}
.player-controls.hidden{opacity:0;}
.player-top{display:flex;align-items:center;gap:16px;}
.player-title{font-size:24px;margin:0;}
.progress{height:4px;background:rgba(255,255,255,.3);margin-bottom:16px;}
.progress-fill{width:28%;height:100%;background:#e50914;}
.player-row{display:flex;align-items:center;gap:16px;}
.player-time{color:#ddd;}
`
}
