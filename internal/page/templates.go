package page

// shellTemplate is the html/template for the portfolio page. Widget
// containers are left empty; the dom package fills them.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}{{if .Owner}} | {{.Owner}}{{end}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-live="{{.Live}}" data-snapshot="{{.SnapshotID}}">
  <header class="site-header">
    <h1 class="site-title">{{.Owner}}</h1>
    {{if .Tagline}}<p class="site-tagline">{{.Tagline}}</p>{{end}}
  </header>
  <main>
    <section id="achievements" class="section">
      <h2 class="section-title">Achievements</h2>
      <div id="achievements-container" class="achievements-grid"></div>
    </section>

    <section id="skills" class="section">
      <div class="section-head">
        <h2 class="section-title">Skills</h2>
        <button id="skill-view-toggle-btn" class="view-toggle" type="button" aria-label="Switch to structured view" data-view="cloud">List</button>
      </div>
      <div id="skills-container" class="skills-list hidden"></div>
      <div id="skill-cloud-container" class="skill-cloud-container"></div>
    </section>

    <section id="projects" class="section">
      <h2 class="section-title">Projects</h2>
      <div class="slider">
        <button id="slider-prev" class="slider-btn" type="button" aria-label="Previous projects">&larr;</button>
        <div class="slider-window">
          <div id="slider-track" class="slider-track"></div>
        </div>
        <button id="slider-next" class="slider-btn" type="button" aria-label="Next projects">&rarr;</button>
      </div>
      <div class="slider-progress-bg"><div id="slider-progress" class="slider-progress"></div></div>
    </section>
  </main>
  <footer class="site-footer">{{.Owner}}</footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet served as style.css.
const cssContent = `:root {
  --bg: #0f1115;
  --bg-card: #171a21;
  --text: #e6e8eb;
  --text-muted: #9aa3ad;
  --accent: #4fd1c5;
  --border: #262b35;
  --radius: 10px;
  --card-gap: 24px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

.hidden { display: none !important; }

.site-header { padding: 64px 24px 24px; text-align: center; }
.site-title { margin: 0; font-size: 2.4rem; }
.site-tagline { color: var(--text-muted); margin-top: 8px; }
.site-footer { padding: 32px; text-align: center; color: var(--text-muted); }

.section { max-width: 1100px; margin: 0 auto; padding: 48px 24px; }
.section-head { display: flex; align-items: center; justify-content: space-between; }
.section-title { font-size: 1.6rem; margin: 0 0 24px; }

.empty-state { color: var(--text-muted); font-style: italic; }

/* Achievements */
.achievements-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: var(--card-gap);
}
.achievement-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  overflow: hidden;
}
.achievement-card-content {
  padding: 24px;
  min-height: 180px;
  display: flex;
  flex-direction: column;
  justify-content: center;
}
.achievement-image { width: 100%; border-radius: 6px; margin-bottom: 12px; }
.achievement-title {
  font-size: 0.85rem;
  font-weight: 700;
  color: var(--accent);
  text-transform: uppercase;
  letter-spacing: 0.12em;
}
.achievement-category { font-size: 0.75rem; color: var(--text-muted); }
.achievement-description { margin-top: 12px; opacity: 0.8; }
.achievement-description p { margin: 0 0 8px; }

/* Skill list */
.view-toggle {
  background: none;
  border: 1px solid var(--border);
  color: var(--text);
  border-radius: 6px;
  padding: 6px 12px;
  cursor: pointer;
}
.skill-category-card { margin-bottom: 32px; }
.skill-category-title { color: var(--accent); font-size: 1.1rem; }
.skills-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
  gap: 12px;
}
.skill-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 12px 16px;
  cursor: default;
}
.skill-card-name { display: block; margin-bottom: 8px; }
.skill-card-proficiency-bg { height: 6px; background: var(--border); border-radius: 3px; }
.skill-card-proficiency-fg { height: 100%; background: var(--accent); border-radius: 3px; }

.skill-notes-tooltip {
  position: fixed;
  transform: translate(-50%, -100%);
  max-width: 280px;
  padding: 8px 12px;
  background: #000;
  color: #fff;
  font-size: 0.85rem;
  border-radius: 6px;
  pointer-events: none;
  opacity: 0;
  visibility: hidden;
  transition: opacity 0.15s;
  z-index: 50;
}
.skill-notes-tooltip.is-visible { opacity: 1; visibility: visible; }

/* Skill cloud */
.skill-cloud-container {
  position: relative;
  height: 640px;
  perspective: 1000px;
  display: flex;
  align-items: center;
  justify-content: center;
}
.skill-cloud {
  position: relative;
  width: 0;
  height: 0;
  transform-style: preserve-3d;
}
.skill-tag {
  position: absolute;
  transform: translate3d(var(--x), var(--y), var(--z));
  transform-style: preserve-3d;
  white-space: nowrap;
  cursor: default;
}
.skill-tag-text {
  display: inline-block;
  padding: 4px 10px;
  border: 1px solid var(--border);
  border-radius: 999px;
  background: var(--bg-card);
  transform: translate(-50%, -50%);
}
.skill-tag:hover .skill-tag-text { border-color: var(--accent); color: var(--accent); }
.skill-definition-tooltip {
  position: absolute;
  bottom: 16px;
  left: 50%;
  transform: translateX(-50%);
  max-width: 420px;
  text-align: center;
  color: var(--text-muted);
  visibility: hidden;
  opacity: 0;
  transition: opacity 0.2s;
}
@keyframes skill-drift {
  from { transform: translate3d(var(--x), var(--y), var(--z)) rotateY(0deg); }
  to { transform: translate3d(calc(var(--x) * -1), var(--y), calc(var(--z) * -1)) rotateY(360deg); }
}

/* Project carousel */
.slider { display: flex; align-items: center; gap: 12px; }
.slider-window { overflow: hidden; flex: 1; }
.slider-track { display: flex; transition: transform 0.4s ease; }
.slider-btn {
  background: var(--bg-card);
  border: 1px solid var(--border);
  color: var(--text);
  width: 40px;
  height: 40px;
  border-radius: 50%;
  cursor: pointer;
}
.slider-btn:disabled { opacity: 0.3; cursor: default; }
.project-card {
  flex: 0 0 calc((100% - 2 * var(--card-gap)) / 3);
  margin-right: var(--card-gap);
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 20px;
}
.project-title { margin-top: 0; }
.project-section-title {
  margin: 12px 0 4px;
  font-size: 0.8rem;
  text-transform: uppercase;
  color: var(--accent);
}
.project-section-body p { margin: 0; }
.slider-progress-bg { height: 4px; background: var(--border); border-radius: 2px; margin-top: 16px; }
.slider-progress { height: 100%; width: 0; background: var(--accent); border-radius: 2px; transition: width 0.3s; }

@media (max-width: 1023px) {
  .project-card { flex-basis: calc((100% - var(--card-gap)) / 2); }
}
@media (max-width: 767px) {
  .project-card { flex-basis: 100%; }
  .skill-cloud-container { height: 420px; }
}
`

// jsContent is the page client served as script.js. In live mode it relays
// viewport and pointer events to the server and applies the returned state.
// Without a live session it falls back to local tooltips and a plain slider.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var track = document.getElementById("slider-track");
  var prevBtn = document.getElementById("slider-prev");
  var nextBtn = document.getElementById("slider-next");
  var progress = document.getElementById("slider-progress");
  var notesTip = document.getElementById("skill-notes-tooltip");
  var cloudTip = document.querySelector(".skill-definition-tooltip");

  // ===== Skill view toggle =====
  var toggleBtn = document.getElementById("skill-view-toggle-btn");
  var listContainer = document.getElementById("skills-container");
  var cloudContainer = document.getElementById("skill-cloud-container");

  if (toggleBtn && listContainer && cloudContainer) {
    toggleBtn.addEventListener("click", function() {
      if (toggleBtn.getAttribute("data-view") === "cloud") {
        cloudContainer.classList.add("hidden");
        listContainer.classList.remove("hidden");
        toggleBtn.textContent = "Cloud";
        toggleBtn.setAttribute("aria-label", "Switch to cloud view");
        toggleBtn.setAttribute("data-view", "list");
      } else {
        listContainer.classList.add("hidden");
        cloudContainer.classList.remove("hidden");
        toggleBtn.textContent = "List";
        toggleBtn.setAttribute("aria-label", "Switch to structured view");
        toggleBtn.setAttribute("data-view", "cloud");
      }
    });
  }

  // ===== Measurements =====
  function measure() {
    var cards = track ? track.querySelectorAll(".project-card") : [];
    var m = { width: window.innerWidth, card_count: cards.length, card_width: 0, card_margin: 0 };
    if (cards.length > 0) {
      var style = window.getComputedStyle(cards[0]);
      m.card_width = cards[0].offsetWidth;
      m.card_margin = parseFloat(style.marginRight) || 0;
    }
    return m;
  }

  function rectOf(el) {
    var r = el.getBoundingClientRect();
    return { left: r.left, top: r.top, width: r.width, height: r.height };
  }

  // ===== Applying state =====
  function applyCarousel(s) {
    var visible = !!s.visible;
    [prevBtn, nextBtn, progress].forEach(function(el) {
      if (el) el.hidden = !visible;
    });
    if (!visible) return;
    if (track) track.style.transform = "translateX(" + s.offset + "px)";
    if (prevBtn) prevBtn.disabled = !s.prev_enabled;
    if (nextBtn) nextBtn.disabled = !s.next_enabled;
    if (progress) progress.style.width = s.progress + "%";
  }

  function applyTooltip(s) {
    if (s.widget === "catalog" && notesTip) {
      notesTip.textContent = s.text || "";
      notesTip.classList.toggle("is-visible", !!s.visible);
      if (s.visible) {
        notesTip.style.left = s.left + "px";
        notesTip.style.top = s.top + "px";
      }
    } else if (s.widget === "cloud" && cloudTip) {
      cloudTip.textContent = s.text || "";
      cloudTip.style.visibility = s.visible ? "visible" : "hidden";
      cloudTip.style.opacity = s.visible ? "1" : "0";
    }
  }

  // ===== Pointer wiring =====
  function bindTags(send) {
    document.querySelectorAll(".skill-card").forEach(function(card) {
      var idx = parseInt(card.getAttribute("data-index"), 10);
      card.addEventListener("mouseenter", function(e) {
        send({ type: "hover", widget: "catalog", index: idx, rect: rectOf(e.currentTarget) });
      });
      card.addEventListener("mouseleave", function() {
        send({ type: "leave", widget: "catalog", index: idx });
      });
    });
    document.querySelectorAll(".skill-tag").forEach(function(tag) {
      var idx = parseInt(tag.getAttribute("data-index"), 10);
      tag.addEventListener("mouseover", function(e) {
        send({ type: "hover", widget: "cloud", index: idx, rect: rectOf(e.currentTarget) });
      });
      tag.addEventListener("mouseout", function() {
        send({ type: "leave", widget: "cloud", index: idx });
      });
    });
  }

  // Local fallback used by the static site and when the socket is gone.
  function localSession() {
    var owners = { catalog: -1, cloud: -1 };
    var page = 0;
    function perPage(w) { return w < 768 ? 1 : (w < 1024 ? 2 : 3); }
    function render() {
      var m = measure();
      if (m.card_count === 0) { applyCarousel({ visible: false }); return; }
      var pp = perPage(m.width);
      var total = Math.ceil(m.card_count / pp);
      if (page > total - 1) page = total - 1;
      applyCarousel({
        visible: true,
        offset: -page * pp * (m.card_width + m.card_margin),
        prev_enabled: page > 0,
        next_enabled: page < total - 1,
        progress: total > 1 ? page / (total - 1) * 100 : 100
      });
      return total;
    }
    return function(msg) {
      switch (msg.type) {
      case "init": case "resize": page = 0; render(); break;
      case "next": page++; render(); break;
      case "prev": if (page > 0) page--; render(); break;
      case "hover":
        var el = msg.widget === "catalog"
          ? document.querySelector('.skill-card[data-index="' + msg.index + '"]')
          : document.querySelector('.skill-tag[data-index="' + msg.index + '"]');
        if (!el) return;
        owners[msg.widget] = msg.index;
        applyTooltip({
          widget: msg.widget,
          visible: true,
          text: el.getAttribute(msg.widget === "catalog" ? "data-notes" : "data-definition"),
          left: msg.rect.left + msg.rect.width / 2,
          top: msg.rect.top - 10
        });
        break;
      case "leave":
        if (owners[msg.widget] !== msg.index) return;
        owners[msg.widget] = -1;
        applyTooltip({ widget: msg.widget, visible: false, text: "" });
        break;
      }
    };
  }

  var send = localSession();
  var resizeTimer = null;
  var started = false;

  function start() {
    if (started) return;
    started = true;
    bindTags(function(m) { send(m); });
    if (prevBtn) prevBtn.addEventListener("click", function() { send({ type: "prev" }); });
    if (nextBtn) nextBtn.addEventListener("click", function() { send({ type: "next" }); });
    window.addEventListener("resize", function() {
      var m = measure();
      m.type = "resize";
      if (body.getAttribute("data-live") === "true") {
        send(m);
        return;
      }
      clearTimeout(resizeTimer);
      resizeTimer = setTimeout(function() { send(m); }, 100);
    });
    var init = measure();
    init.type = "init";
    send(init);
  }

  if (body.getAttribute("data-live") !== "true" || !window.WebSocket) {
    start();
    return;
  }

  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/live");
  var fallback = send;

  ws.onopen = function() {
    send = function(m) {
      if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(m));
    };
    start();
  };
  ws.onmessage = function(e) {
    var msg;
    try { msg = JSON.parse(e.data); } catch (err) { return; }
    if (msg.type === "carousel") applyCarousel(msg.carousel);
    else if (msg.type === "tooltip") applyTooltip(msg.tooltip);
    else if (msg.type === "reload") location.reload();
    else if (msg.type === "error") console.warn("live session:", msg.error);
  };
  ws.onclose = function() {
    send = fallback;
  };
  ws.onerror = function() {
    if (ws.readyState !== WebSocket.OPEN) {
      send = fallback;
      start();
    }
  };
  window.addEventListener("beforeunload", function() { ws.close(); });
})();
`
