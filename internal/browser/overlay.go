package browser

// overlayScript strips modals, cookie walls and other pop-ups before a
// screenshot, then keeps stripping as the page mutates. High z-index divs
// are removed too, except navigation chrome. The MutationObserver callback
// is debounced so busy pages don't thrash.
const overlayScript = `
(() => {
    const removeOverlays = () => {
        const selectors = [
            'div[class*="modal" i]',
            'div[class*="popup" i]',
            'div[class*="pop-up" i]',
            'div[class*="dialog" i]',
            'div[class*="bg-black" i]',
            'div[id*="dialog" i]',
            'div[id*="modal" i]',
            'div[id*="popup" i]',
            'div[id*="pop-up" i]',
            'div[id*="bg-black" i]',
            'div[role="dialog"]',
            'div[role="alertdialog"]',
            'div[role="presentation"]',
            'div[data-modal]',
            'div[data-dialog]',
        ];
        selectors.forEach(selector => {
            document.querySelectorAll(selector).forEach(el => {
                el.remove();
            });
        });
        document.querySelectorAll('div[style*="z-index"]').forEach(el => {
            const zIndex = window.getComputedStyle(el).zIndex;
            const classList = el.className.toLowerCase();
            const isNavbar = /navbar|header|menu|nav/.test(classList);
            if (zIndex && parseInt(zIndex) >= 1000 && !isNavbar) {
                el.remove();
            }
        });
    };
    const debounce = (fn, delay) => {
        let timerId;
        return (...args) => {
            clearTimeout(timerId);
            timerId = setTimeout(() => fn.apply(null, args), delay);
        };
    };
    const debouncedRemoveOverlays = debounce(removeOverlays, 200);
    removeOverlays();
    const observer = new MutationObserver(() => {
        debouncedRemoveOverlays();
    });
    observer.observe(document.body, {
        childList: true,
        subtree: true,
    });
})()
`
