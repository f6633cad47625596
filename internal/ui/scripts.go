package ui

import (
	"fmt"
	"strings"
)

// AppendNavbarScript makes the navbar opaque once the page scrolls past 50px.
func AppendNavbarScript(b *strings.Builder) {
	b.WriteString(`<script>(function(){var n=document.getElementById('navbar');if(!n){return;}
function u(){if(window.scrollY>50){n.classList.add('nav-solid');}else{n.classList.remove('nav-solid');}}
window.addEventListener('scroll',u);u();})();</script>`)
}

// AppendHeroScript advances the banner on a timer and wires the dots.
func AppendHeroScript(b *strings.Builder) {
	b.WriteString(`<script>(function(){var h=document.getElementById('hero');if(!h){return;}
var s=h.querySelectorAll('.hero-slide'),d=h.querySelectorAll('.hero-dot'),i=0;if(s.length<2){return;}
function show(n){s[i].classList.remove('active');if(d[i]){d[i].classList.remove('active');}
i=n;s[i].classList.add('active');if(d[i]){d[i].classList.add('active');}}
var t=setInterval(function(){show((i+1)%s.length);},parseInt(h.getAttribute('data-interval'),10));
for(var k=0;k<d.length;k++){d[k].addEventListener('click',function(){clearInterval(t);
show(parseInt(this.getAttribute('data-index'),10));t=setInterval(function(){show((i+1)%s.length);},parseInt(h.getAttribute('data-interval'),10));});}
})();</script>`)
}

// AppendRowScript scrolls rows by their arrow step and hides arrows at the
// ends of the track.
func AppendRowScript(b *strings.Builder) {
	b.WriteString(`<script>(function(){var a=document.querySelectorAll('.row-arrow');
function sync(id){var r=document.getElementById(id);if(!r){return;}
var l=document.querySelector('.row-left[data-row="'+id+'"]'),g=document.querySelector('.row-right[data-row="'+id+'"]');
if(l){l.hidden=r.scrollLeft<=0;}if(g){g.hidden=r.scrollLeft+r.clientWidth>=r.scrollWidth-1;}}
for(var k=0;k<a.length;k++){(function(btn){var id=btn.getAttribute('data-row'),r=document.getElementById(id);if(!r){return;}
btn.addEventListener('click',function(){r.scrollBy({left:parseInt(btn.getAttribute('data-step'),10),behavior:'smooth'});});
r.addEventListener('scroll',function(){sync(id);});sync(id);})(a[k]);}
})();</script>`)
}

// AppendPlayerScript fades the player controls after a period without
// mouse movement.
func AppendPlayerScript(b *strings.Builder) {
	fmt.Fprintf(b, `<script>(function(){var c=document.getElementById('player-controls'),p=document.getElementById('player');if(!c||!p){return;}
var t;function wake(){c.classList.remove('hidden');clearTimeout(t);t=setTimeout(function(){c.classList.add('hidden');},%d);}
p.addEventListener('mousemove',wake);wake();})();</script>`, ControlsTimeout)
}

// AppendSuggestionScript attaches a datalist fed from /suggest to inputID.
func AppendSuggestionScript(b *strings.Builder, inputID string) {
	if strings.TrimSpace(inputID) == "" {
		return
	}
	b.WriteString(`<datalist id="suggestions"></datalist>`)
	fmt.Fprintf(b, `<script>(function(){var input=document.getElementById('%s');if(!input){return;}
var list=document.getElementById('suggestions'),timer=null,last='';
function render(items){list.innerHTML='';for(var i=0;i<items.length;i++){var o=document.createElement('option');o.value=items[i];list.appendChild(o);}}
input.addEventListener('input',function(){var q=input.value.trim();if(q.length<2){render([]);return;}
if(q===last){return;}last=q;clearTimeout(timer);timer=setTimeout(function(){
var x=new XMLHttpRequest();x.open('GET','/suggest?q='+encodeURIComponent(q),true);
x.onreadystatechange=function(){if(x.readyState===4&&x.status===200){try{render(JSON.parse(x.responseText).suggestions||[]);}catch(e){}}};
x.send(null);},150);});})();</script>`, EscapeAttr(inputID))
}
